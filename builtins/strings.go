package builtins

import (
	"context"
	"strconv"
	"strings"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

// Str returns the display form of its argument.
func Str(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("str", 1, args); err != nil {
		return nil, err
	}
	if s, ok := args[0].(*object.String); ok {
		return s, nil
	}
	return object.NewString(args[0].String()), nil
}

// Num converts a string or bool to a number.
func Num(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("num", 1, args); err != nil {
		return nil, err
	}
	switch arg := args[0].(type) {
	case *object.Number:
		return arg, nil
	case *object.Bool:
		if arg.Value() {
			return object.NewNumber(1), nil
		}
		return object.NewNumber(0), nil
	case *object.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(arg.Value()), 64)
		if err != nil {
			return nil, errors.New(errors.InvalidArgument, "num() cannot convert %q to a number", arg.Value())
		}
		return object.NewNumber(v), nil
	}
	return nil, errors.New(errors.TypeMismatch,
		"num() expects a string, number or bool (%s given)", args[0].Type())
}

func stringFunc(name string, args []object.Object, fn func(string) string) (object.Object, error) {
	if err := object.Require(name, 1, args); err != nil {
		return nil, err
	}
	s, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	return object.NewString(fn(s)), nil
}

func Upper(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return stringFunc("upper", args, strings.ToUpper)
}

func Lower(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return stringFunc("lower", args, strings.ToLower)
}

func Trim(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	return stringFunc("trim", args, strings.TrimSpace)
}

func Split(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("split", 2, args); err != nil {
		return nil, err
	}
	s, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	sep, err := object.AsString(args[1])
	if err != nil {
		return nil, err
	}
	return object.NewStringArray(strings.Split(s, sep)), nil
}

// Join concatenates the display forms of the array items with sep.
func Join(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("join", 2, args); err != nil {
		return nil, err
	}
	arr, err := object.AsArray(args[0])
	if err != nil {
		return nil, err
	}
	sep, err := object.AsString(args[1])
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, arr.Len())
	for _, item := range arr.Value() {
		parts = append(parts, item.String())
	}
	return object.NewString(strings.Join(parts, sep)), nil
}

// Contains reports whether a string holds a substring, or an array holds
// an item equal to the value. Items of other types never match.
func Contains(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("contains", 2, args); err != nil {
		return nil, err
	}
	switch container := args[0].(type) {
	case *object.String:
		sub, err := object.AsString(args[1])
		if err != nil {
			return nil, err
		}
		return object.NewBool(strings.Contains(container.Value(), sub)), nil
	case *object.Array:
		for _, item := range container.Value() {
			if item.Type() != args[1].Type() {
				continue
			}
			eq, err := object.Equals(item, args[1])
			if err != nil {
				return nil, err
			}
			if eq {
				return object.True, nil
			}
		}
		return object.False, nil
	}
	return nil, errors.New(errors.TypeMismatch,
		"contains() expects an array or a string (%s given)", args[0].Type())
}

func Type(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("type", 1, args); err != nil {
		return nil, err
	}
	return object.NewString(string(args[0].Type())), nil
}
