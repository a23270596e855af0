package imp

import (
	"io"
	"maps"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/cloudcmds/imp/evaluator"
	"github.com/cloudcmds/imp/importer"
	"github.com/cloudcmds/imp/parser"
)

// Option describes a function used to configure an imp evaluation.
type Option func(*config)

type config struct {
	globals               map[string]any
	denylist              map[string]bool
	withoutDefaultGlobals bool
	filename              string
	args                  []string
	stdout                io.Writer
	logger                zerolog.Logger
	maxDepth              int
	maxNesting            int
	isolate               bool
	importer              importer.Importer
	withoutCapabilities   bool
	fs                    afero.Fs
	httpClient            *http.Client
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		globals:  map[string]any{},
		denylist: map[string]bool{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

func (c *config) ParserOpts() []parser.Option {
	var opts []parser.Option
	if c.filename != "" {
		opts = append(opts, parser.WithFilename(c.filename))
	}
	if c.maxNesting > 0 {
		opts = append(opts, parser.WithMaxDepth(c.maxNesting))
	}
	return opts
}

func (c *config) EvaluatorOpts() []evaluator.Option {
	opts := []evaluator.Option{
		evaluator.WithLogger(c.logger),
		evaluator.WithCallIsolation(c.isolate),
	}
	if c.maxDepth > 0 {
		opts = append(opts, evaluator.WithMaxDepth(c.maxDepth))
	}
	switch {
	case c.importer != nil:
		opts = append(opts, evaluator.WithImporter(c.importer))
	case !c.withoutCapabilities:
		opts = append(opts, evaluator.WithImporter(DefaultImporter(c.fs, c.httpClient, importer.WithLogger(c.logger))))
	}
	return opts
}

// WithGlobals provides global variables that are made available to imp
// programs. Go values are converted with object.FromGoType. This option is
// additive; if the same key is supplied multiple times, the last value wins.
func WithGlobals(globals map[string]any) Option {
	return func(cfg *config) {
		maps.Copy(cfg.globals, globals)
	}
}

// WithGlobal supplies a single named global variable.
func WithGlobal(name string, value any) Option {
	return func(cfg *config) {
		cfg.globals[name] = value
	}
}

// WithoutGlobals removes the named globals, builtins included.
func WithoutGlobals(names ...string) Option {
	return func(cfg *config) {
		for _, name := range names {
			cfg.denylist[name] = true
		}
	}
}

// WithoutDefaultGlobals opts out of all default builtins.
func WithoutDefaultGlobals() Option {
	return func(cfg *config) {
		cfg.withoutDefaultGlobals = true
	}
}

// WithFilename sets the filename reported in error messages.
func WithFilename(filename string) Option {
	return func(cfg *config) {
		cfg.filename = filename
	}
}

// WithArgs sets the arguments passed to @main when it declares a parameter.
func WithArgs(args []string) Option {
	return func(cfg *config) {
		cfg.args = args
	}
}

// WithStdout redirects print and println.
func WithStdout(w io.Writer) Option {
	return func(cfg *config) {
		cfg.stdout = w
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithMaxDepth limits the number of nested function calls.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) {
		cfg.maxDepth = depth
	}
}

// WithMaxNesting limits how deeply brackets may nest in source code.
func WithMaxNesting(depth int) Option {
	return func(cfg *config) {
		cfg.maxNesting = depth
	}
}

// WithCallIsolation gives each function call its own child scope.
func WithCallIsolation(enabled bool) Option {
	return func(cfg *config) {
		cfg.isolate = enabled
	}
}

// WithImporter supplies the Importer used to resolve "use" statements,
// replacing the default capabilities.
func WithImporter(i importer.Importer) Option {
	return func(cfg *config) {
		cfg.importer = i
	}
}

// WithoutCapabilities makes every "use" statement fail.
func WithoutCapabilities() Option {
	return func(cfg *config) {
		cfg.withoutCapabilities = true
	}
}

// WithFilesystem sets the filesystem behind the fs capability.
func WithFilesystem(fs afero.Fs) Option {
	return func(cfg *config) {
		cfg.fs = fs
	}
}

// WithHTTPClient sets the client behind the internet capability.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}
