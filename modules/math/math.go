// Package math provides the "math" capability.
package math

import (
	"context"
	"math"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

func unary(name string, fn func(float64) float64) object.BuiltinFunction {
	return func(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
		if err := object.Require(name, 1, args); err != nil {
			return nil, err
		}
		x, err := object.AsNumber(args[0])
		if err != nil {
			return nil, err
		}
		result := fn(x)
		if math.IsNaN(result) {
			return nil, errors.New(errors.InvalidArgument, "%s() is undefined for %s", name, args[0])
		}
		return object.NewNumber(result), nil
	}
}

func Sqrt(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("sqrt", 1, args); err != nil {
		return nil, err
	}
	x, err := object.AsNumber(args[0])
	if err != nil {
		return nil, err
	}
	if x < 0 {
		return nil, errors.New(errors.InvalidArgument, "sqrt() of a negative number (%s given)", args[0])
	}
	return object.NewNumber(math.Sqrt(x)), nil
}

func Min(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return extreme("min", args, func(a, b float64) bool { return a < b })
}

func Max(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return extreme("max", args, func(a, b float64) bool { return a > b })
}

// extreme accepts either several numbers or a single array of numbers.
func extreme(name string, args []object.Object, better func(a, b float64) bool) (object.Object, error) {
	if err := object.RequireRange(name, 1, -1, args); err != nil {
		return nil, err
	}
	values := args
	if len(args) == 1 {
		if arr, ok := args[0].(*object.Array); ok {
			values = arr.Value()
		}
	}
	if len(values) == 0 {
		return nil, errors.New(errors.InvalidArgument, "%s() of an empty array", name)
	}
	best, err := object.AsNumber(values[0])
	if err != nil {
		return nil, err
	}
	for _, v := range values[1:] {
		x, err := object.AsNumber(v)
		if err != nil {
			return nil, err
		}
		if better(x, best) {
			best = x
		}
	}
	return object.NewNumber(best), nil
}

func Module() *object.Module {
	return object.NewBuiltinsModule("math", map[string]object.Object{
		"abs":   object.NewBuiltin("abs", unary("abs", math.Abs)),
		"ceil":  object.NewBuiltin("ceil", unary("ceil", math.Ceil)),
		"e":     object.NewNumber(math.E),
		"floor": object.NewBuiltin("floor", unary("floor", math.Floor)),
		"max":   object.NewBuiltin("max", Max),
		"min":   object.NewBuiltin("min", Min),
		"pi":    object.NewNumber(math.Pi),
		"round": object.NewBuiltin("round", unary("round", math.Round)),
		"sqrt":  object.NewBuiltin("sqrt", Sqrt),
	})
}
