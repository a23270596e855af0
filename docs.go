package imp

import (
	"encoding/json"
	"strings"

	"github.com/cloudcmds/imp/builtins"
	"github.com/cloudcmds/imp/errors"
	modFs "github.com/cloudcmds/imp/modules/fs"
	modHtml "github.com/cloudcmds/imp/modules/html"
	modInternet "github.com/cloudcmds/imp/modules/internet"
	modMath "github.com/cloudcmds/imp/modules/math"
	modUuid "github.com/cloudcmds/imp/modules/uuid"
	"github.com/cloudcmds/imp/object"
)

// Version is the current imp version.
const Version = "0.3.0"

// DocsOption configures documentation retrieval.
type DocsOption func(*docsOptions)

type docsOptions struct {
	category string
	topic    string
	all      bool
}

// DocsCategory filters documentation to a specific category.
// Valid categories: "builtins", "capabilities", "syntax", "errors"
func DocsCategory(cat string) DocsOption {
	return func(o *docsOptions) {
		o.category = cat
	}
}

// DocsTopic retrieves documentation for a specific topic.
// Examples: "len", "math", "math.sqrt"
func DocsTopic(topic string) DocsOption {
	return func(o *docsOptions) {
		o.topic = topic
	}
}

// DocsAll returns complete documentation.
func DocsAll() DocsOption {
	return func(o *docsOptions) {
		o.all = true
	}
}

// Documentation provides structured access to imp documentation.
type Documentation struct {
	data any
}

// JSON returns the documentation as a JSON string.
func (d *Documentation) JSON() string {
	b, _ := json.MarshalIndent(d.data, "", "  ")
	return string(b)
}

// Data returns the raw documentation data.
func (d *Documentation) Data() any {
	return d.data
}

type docsInfo struct {
	Version        string `json:"version"`
	Description    string `json:"description"`
	ExecutionModel string `json:"execution_model"`
}

type docsSyntaxItem struct {
	Syntax string `json:"syntax"`
	Notes  string `json:"notes"`
}

type docsCapability struct {
	Name      string            `json:"name"`
	Doc       string            `json:"doc"`
	Functions []object.FuncSpec `json:"functions"`
}

type docsError struct {
	Code        string `json:"code"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

type docsQuickReference struct {
	Imp    docsInfo          `json:"imp"`
	Syntax []docsSyntaxItem  `json:"syntax"`
	Topics map[string]string `json:"topics"`
}

type docsFullDocumentation struct {
	Imp          docsInfo          `json:"imp"`
	Builtins     []object.FuncSpec `json:"builtins"`
	Capabilities []docsCapability  `json:"capabilities"`
	Syntax       []docsSyntaxItem  `json:"syntax"`
	Errors       []docsError       `json:"errors"`
}

var docsSyntax = []docsSyntaxItem{
	{"@name(a, b) { ... }", "declare a function; every program needs @main"},
	{"f(x, y)", "call a function or builtin"},
	{"f(x) -> y", "call and store the result in y"},
	{"decl x value", "bind x in the current scope"},
	{"del x", "remove x from the current scope"},
	{"return value", "end the current function body with a value; inside if/for/while it ends only that block"},
	{"use name", "bring a capability's functions into scope"},
	{"if cond { ... }", "run the block when cond is true"},
	{"for array => x { ... }", "run the block once per item"},
	{"while cond { ... }", "repeat the block while cond is true"},
	{"[1 2 3]", "array literal; commas are optional"},
	{"# comment #", "comments are closed by a second #"},
}

func capabilityDocs() []docsCapability {
	return []docsCapability{
		{Name: "fs", Doc: "File access", Functions: modFs.Docs()},
		{Name: "html", Doc: "HTML generation", Functions: modHtml.Docs()},
		{Name: "internet", Doc: "HTTP requests", Functions: modInternet.Docs()},
		{Name: "math", Doc: modMath.ModuleDoc(), Functions: modMath.Docs()},
		{Name: "uuid", Doc: "UUID generation", Functions: modUuid.Docs()},
	}
}

func errorDocs() []docsError {
	var out []docsError
	for _, code := range errors.Codes() {
		out = append(out, docsError{
			Code:        code.String(),
			Kind:        code.Kind().String(),
			Description: code.Description(),
		})
	}
	return out
}

func info() docsInfo {
	return docsInfo{
		Version:        Version,
		Description:    "Minimal interpreted scripting language",
		ExecutionModel: "source → lexer → grouper → function extractor → call rewriter → tree-walking evaluator",
	}
}

// Docs returns structured documentation about imp, for tooling and the
// command line.
//
//	docs := imp.Docs(imp.DocsTopic("math.sqrt"))
//	fmt.Println(docs.JSON())
func Docs(opts ...DocsOption) *Documentation {
	o := &docsOptions{}
	for _, opt := range opts {
		opt(o)
	}
	switch {
	case o.all:
		return &Documentation{data: docsFullDocumentation{
			Imp:          info(),
			Builtins:     builtins.Docs(),
			Capabilities: capabilityDocs(),
			Syntax:       docsSyntax,
			Errors:       errorDocs(),
		}}
	case o.category != "":
		return &Documentation{data: buildCategoryDocs(o.category)}
	case o.topic != "":
		return &Documentation{data: buildTopicDocs(o.topic)}
	}
	return &Documentation{data: docsQuickReference{
		Imp:    info(),
		Syntax: docsSyntax,
		Topics: map[string]string{
			"builtins":     "Functions available in every program (print, add, len, ...)",
			"capabilities": "Modules enabled with use (fs, html, internet, math, uuid)",
			"syntax":       "Statement and expression forms",
			"errors":       "Error codes",
		},
	}}
}

func buildCategoryDocs(category string) any {
	switch category {
	case "builtins":
		return map[string]any{"builtins": builtins.Docs()}
	case "capabilities":
		return map[string]any{"capabilities": capabilityDocs()}
	case "syntax":
		return map[string]any{"syntax": docsSyntax}
	case "errors":
		return map[string]any{"errors": errorDocs()}
	}
	return map[string]any{
		"error":     "unknown category: " + category,
		"available": []string{"builtins", "capabilities", "syntax", "errors"},
	}
}

func buildTopicDocs(topic string) any {
	capName, funcName, qualified := strings.Cut(topic, ".")
	for _, c := range capabilityDocs() {
		if c.Name != capName {
			continue
		}
		if !qualified {
			return c
		}
		for _, spec := range c.Functions {
			if spec.Name == funcName {
				return spec
			}
		}
	}
	if !qualified {
		for _, spec := range builtins.Docs() {
			if spec.Name == topic {
				return spec
			}
		}
	}
	var names []string
	for _, spec := range builtins.Docs() {
		names = append(names, spec.Name)
	}
	for _, c := range capabilityDocs() {
		names = append(names, c.Name)
	}
	result := map[string]any{"error": "unknown topic: " + topic}
	if hint := errors.FormatSuggestions(errors.Suggest(topic, names)); hint != "" {
		result["hint"] = hint
	}
	return result
}
