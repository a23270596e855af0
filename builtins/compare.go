package builtins

import (
	"context"

	"github.com/cloudcmds/imp/object"
)

func Eq(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("eq", 2, args); err != nil {
		return nil, err
	}
	eq, err := object.Equals(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return object.NewBool(eq), nil
}

func Ne(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("ne", 2, args); err != nil {
		return nil, err
	}
	eq, err := object.Equals(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return object.NewBool(!eq), nil
}

func order(name string, args []object.Object, test func(int) bool) (object.Object, error) {
	if err := object.Require(name, 2, args); err != nil {
		return nil, err
	}
	cmp, err := object.Compare(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return object.NewBool(test(cmp)), nil
}

func Lt(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return order("lt", args, func(c int) bool { return c < 0 })
}

func Le(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return order("le", args, func(c int) bool { return c <= 0 })
}

func Gt(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return order("gt", args, func(c int) bool { return c > 0 })
}

func Ge(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return order("ge", args, func(c int) bool { return c >= 0 })
}

// Cmp reports whether its first argument is less than its second. It is the
// condition used by counted while loops.
func Cmp(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return order("cmp", args, func(c int) bool { return c < 0 })
}

func Not(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("not", 1, args); err != nil {
		return nil, err
	}
	b, err := object.AsBool(args[0])
	if err != nil {
		return nil, err
	}
	return object.NewBool(!b), nil
}

func And(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return logic("and", args, true)
}

func Or(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return logic("or", args, false)
}

// logic evaluates and/or. Every argument must be a bool, even after the
// result is known.
func logic(name string, args []object.Object, and bool) (object.Object, error) {
	if err := object.RequireRange(name, 2, -1, args); err != nil {
		return nil, err
	}
	result := and
	for _, arg := range args {
		b, err := object.AsBool(arg)
		if err != nil {
			return nil, err
		}
		if and {
			result = result && b
		} else {
			result = result || b
		}
	}
	return object.NewBool(result), nil
}
