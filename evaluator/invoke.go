package evaluator

import (
	"context"
	goerrors "errors"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

// Invoke calls a function or builtin with the given arguments. Builtins
// receive the live scope. Functions must be called with exactly as many
// arguments as they declare parameters; the parameters are bound in scope
// from left to right before the body runs.
func (e *Evaluator) Invoke(ctx context.Context, callable object.Object, args []object.Object, scope *object.Scope) (object.Object, error) {
	switch fn := callable.(type) {
	case *object.Builtin:
		result, err := fn.Call(ctx, scope, args...)
		if err != nil {
			return nil, nativeError(fn, err)
		}
		if result == nil {
			return object.Void, nil
		}
		return result, nil
	case *object.Function:
		return e.callFunction(ctx, fn, args, scope)
	case nil:
		return nil, errors.New(errors.UndefinedVariable, "cannot call an undefined function")
	default:
		return nil, errors.New(errors.TypeMismatch, "a %s is not callable", callable.Type())
	}
}

func (e *Evaluator) callFunction(ctx context.Context, fn *object.Function, args []object.Object, scope *object.Scope) (object.Object, error) {
	params := fn.Params()
	if len(params) != len(args) {
		return nil, errors.New(errors.ArityMismatch,
			"wrong number of arguments to @%s (expected %d, found %d)", fn.Name(), len(params), len(args))
	}
	if e.depth >= e.maxDepth {
		return nil, errors.New(errors.RecursionTooDeep,
			"recursion too deep: more than %d nested calls", e.maxDepth).
			WithHint("check that @" + fn.Name() + " has a base case")
	}
	e.depth++
	defer func() { e.depth-- }()

	frame := scope
	if e.isolate {
		frame = object.NewChildScope(scope)
	}
	for i, name := range params {
		frame.Set(name, args[i])
	}

	e.logger.Debug().Str("function", fn.Name()).Int("args", len(args)).Int("depth", e.depth).Msg("call")

	result, _, err := e.execBlock(ctx, fn.Body(), frame)
	if err != nil {
		if ierr, ok := errors.As(err); ok {
			ierr.PushFrame("@" + fn.Name())
		}
		return nil, err
	}
	return result, nil
}

// nativeError keeps interpreter errors raised by a builtin and wraps any
// other error as a native failure.
func nativeError(fn *object.Builtin, err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	if goerrors.Is(err, context.Canceled) || goerrors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errors.Wrap(errors.NativeFailure, err, "%s: %v", fn.Key(), err)
}
