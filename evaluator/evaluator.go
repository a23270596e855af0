// Package evaluator executes parsed imp programs by walking the AST.
//
// A single Scope is threaded through every call: parameters and "decl"
// bindings made by a function are visible to its caller, and if/for/while
// bodies run against the scope of the statement that contains them. Use
// WithCallIsolation to give each call a child scope instead.
//
// An Evaluator is not safe for concurrent use.
package evaluator

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cloudcmds/imp/ast"
	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/importer"
	"github.com/cloudcmds/imp/internal/lexer"
	"github.com/cloudcmds/imp/object"
)

// DefaultMaxDepth is the default limit on nested function calls.
const DefaultMaxDepth = 1000

// EntryPoint is the name of the function called by Run.
const EntryPoint = "main"

// Evaluator runs imp programs by walking their AST. It tracks call depth
// across Run and Invoke, so one Evaluator runs one program at a time.
type Evaluator struct {
	importer importer.Importer
	logger   zerolog.Logger
	maxDepth int
	isolate  bool

	// source code, used to attach line text to errors
	source string

	// current number of active function calls
	depth int
}

// New returns an Evaluator configured with the given options.
func New(options ...Option) *Evaluator {
	e := &Evaluator{
		logger:   zerolog.Nop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Run binds the program's functions in scope, applies its top-level "use"
// statements and calls main. If main declares a parameter it receives the
// argv strings as an array.
func (e *Evaluator) Run(ctx context.Context, program *ast.Program, scope *object.Scope, argv []string) (object.Object, error) {
	for _, fn := range program.Funcs {
		scope.Set(fn.Name.Literal(), object.NewFunction(fn))
	}
	for _, use := range program.Uses {
		if err := e.use(ctx, use.Name, scope); err != nil {
			return nil, err
		}
	}
	obj, found := scope.Get(EntryPoint)
	main, ok := obj.(*object.Function)
	if !found || !ok {
		return nil, errors.New(errors.NoEntryPoint, "no entry point: function @%s is not declared", EntryPoint).
			WithHint("declare it with @main() { ... }")
	}
	var args []object.Object
	switch main.Decl().Arity() {
	case 0:
	case 1:
		args = []object.Object{object.NewStringArray(argv)}
	default:
		return nil, e.errorAt(errors.ArityMismatch, main.Decl(),
			"@%s must take zero parameters or one (the argument array), found %d",
			EntryPoint, main.Decl().Arity())
	}
	e.logger.Debug().Int("functions", len(program.Funcs)).Int("args", len(argv)).Msg("running main")
	return e.Invoke(ctx, main, args, scope)
}

// errorAt returns a new error located at the given node.
func (e *Evaluator) errorAt(code errors.ErrorCode, node ast.Node, format string, args ...any) *errors.Error {
	err := errors.New(code, format, args...)
	if node != nil {
		pos := node.Pos()
		err.At(pos, lexer.LineText(e.source, pos.LineNumber()))
	}
	return err
}

// locate attaches the node position to err if it has none yet.
func (e *Evaluator) locate(err error, node ast.Node) error {
	ierr, ok := errors.As(err)
	if !ok || node == nil || !ierr.Location.IsZero() {
		return err
	}
	pos := node.Pos()
	ierr.At(pos, lexer.LineText(e.source, pos.LineNumber()))
	return err
}
