package builtins

import (
	"context"
	"math"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

// fold applies op from left to right across the numeric arguments. A
// result that is not a number, such as pow(-1, 0.5), is an invalid argument.
func fold(name string, args []object.Object, op func(acc, x float64) (float64, error)) (object.Object, error) {
	if err := object.RequireRange(name, 1, -1, args); err != nil {
		return nil, err
	}
	acc, err := number(name, args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		x, err := number(name, arg)
		if err != nil {
			return nil, err
		}
		if acc, err = op(acc, x); err != nil {
			return nil, err
		}
		if math.IsNaN(acc) {
			return nil, errors.New(errors.InvalidArgument,
				"%s() has no numeric result for %s", name, object.NewArray(args))
		}
	}
	return object.NewNumber(acc), nil
}

func number(name string, obj object.Object) (float64, error) {
	n, ok := obj.(*object.Number)
	if !ok {
		return 0, errors.New(errors.TypeMismatch,
			"%s() expects numbers (%s given)", name, object.TypeName(obj))
	}
	return n.Value(), nil
}

// Add returns the sum of its arguments, or 0 with no arguments.
func Add(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if len(args) == 0 {
		return object.NewNumber(0), nil
	}
	return fold("add", args, func(acc, x float64) (float64, error) { return acc + x, nil })
}

func Sub(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return fold("sub", args, func(acc, x float64) (float64, error) { return acc - x, nil })
}

func Mult(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return fold("mult", args, func(acc, x float64) (float64, error) { return acc * x, nil })
}

func Div(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return fold("div", args, func(acc, x float64) (float64, error) {
		if x == 0 {
			return 0, errors.New(errors.DivisionByZero, "div() by zero")
		}
		return acc / x, nil
	})
}

func Pow(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return fold("pow", args, func(acc, x float64) (float64, error) { return math.Pow(acc, x), nil })
}

func Mod(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("mod", 2, args); err != nil {
		return nil, err
	}
	return fold("mod", args, func(acc, x float64) (float64, error) {
		if x == 0 {
			return 0, errors.New(errors.DivisionByZero, "mod() by zero")
		}
		return math.Mod(acc, x), nil
	})
}
