package html

import "github.com/cloudcmds/imp/object"

// Docs returns documentation for the html module.
func Docs() []object.FuncSpec {
	return []object.FuncSpec{
		{Name: "tag", Doc: "Wrap content in an HTML element", Args: []string{"name", "content..."}, Returns: "string", Example: `tag("p", "hi") -> para`},
		{Name: "escape", Doc: "Escape text for use in HTML", Args: []string{"text"}, Returns: "string"},
		{Name: "markdown", Doc: "Render markdown to HTML", Args: []string{"source"}, Returns: "string"},
		{Name: "page", Doc: "Build a complete HTML document", Args: []string{"title", "body..."}, Returns: "string"},
	}
}
