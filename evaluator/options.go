package evaluator

import (
	"github.com/rs/zerolog"

	"github.com/cloudcmds/imp/importer"
)

// Option is a configuration function for an Evaluator.
type Option func(*Evaluator)

// WithImporter sets the importer used to resolve "use" statements.
func WithImporter(imp importer.Importer) Option {
	return func(e *Evaluator) {
		e.importer = imp
	}
}

// WithLogger sets the logger. Calls and imports are logged at debug level,
// loop iterations at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithMaxDepth sets the maximum number of nested function calls. The
// default is 1000.
func WithMaxDepth(depth int) Option {
	return func(e *Evaluator) {
		e.maxDepth = depth
	}
}

// WithCallIsolation gives every function call a child scope, so parameters
// and declarations no longer leak into the caller.
func WithCallIsolation(enabled bool) Option {
	return func(e *Evaluator) {
		e.isolate = enabled
	}
}

// WithSource provides the program source so errors can show the
// offending line.
func WithSource(source string) Option {
	return func(e *Evaluator) {
		e.source = source
	}
}
