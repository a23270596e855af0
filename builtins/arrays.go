package builtins

import (
	"context"
	"math"
	"unicode/utf8"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

// MaxRangeSize limits the number of items range() may produce.
const MaxRangeSize = 10_000_000

// Len returns the number of items in an array or characters in a string.
func Len(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("len", 1, args); err != nil {
		return nil, err
	}
	switch arg := args[0].(type) {
	case *object.Array:
		return object.NewNumber(float64(arg.Len())), nil
	case *object.String:
		return object.NewNumber(float64(utf8.RuneCountInString(arg.Value()))), nil
	default:
		return nil, errors.New(errors.TypeMismatch,
			"len() expects an array or a string (%s given)", args[0].Type())
	}
}

// Push returns a new array with the remaining arguments appended.
func Push(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("push", 2, -1, args); err != nil {
		return nil, err
	}
	arr, err := object.AsArray(args[0])
	if err != nil {
		return nil, err
	}
	return arr.Append(args[1:]...), nil
}

// Get returns an array item or a one-character string. Negative indexes
// count from the end.
func Get(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("get", 2, args); err != nil {
		return nil, err
	}
	idx, err := object.AsInt(args[1])
	if err != nil {
		return nil, err
	}
	switch container := args[0].(type) {
	case *object.Array:
		return container.Get(idx)
	case *object.String:
		chars := object.NewStringArray(splitChars(container.Value()))
		return chars.Get(idx)
	default:
		return nil, errors.New(errors.TypeMismatch,
			"get() expects an array or a string (%s given)", args[0].Type())
	}
}

// Set returns a copy of the array with one item replaced.
func Set(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("set", 3, args); err != nil {
		return nil, err
	}
	arr, err := object.AsArray(args[0])
	if err != nil {
		return nil, err
	}
	idx, err := object.AsInt(args[1])
	if err != nil {
		return nil, err
	}
	return arr.With(idx, args[2])
}

// Slice returns items [start, end) of an array or string. The end defaults
// to the length; both bounds are clamped.
func Slice(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("slice", 2, 3, args); err != nil {
		return nil, err
	}
	var items []object.Object
	str, isString := args[0].(*object.String)
	switch container := args[0].(type) {
	case *object.Array:
		items = container.Value()
	case *object.String:
		items = object.NewStringArray(splitChars(container.Value())).Value()
	default:
		return nil, errors.New(errors.TypeMismatch,
			"slice() expects an array or a string (%s given)", args[0].Type())
	}
	start, err := object.AsInt(args[1])
	if err != nil {
		return nil, err
	}
	end := len(items)
	if len(args) == 3 {
		if end, err = object.AsInt(args[2]); err != nil {
			return nil, err
		}
	}
	start, end = clamp(start, len(items)), clamp(end, len(items))
	if end < start {
		end = start
	}
	if isString {
		runes := []rune(str.Value())
		return object.NewString(string(runes[start:end])), nil
	}
	out := make([]object.Object, end-start)
	copy(out, items[start:end])
	return object.NewArray(out), nil
}

func clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

// Range returns the numbers [start, end) by step. With one argument the
// range starts at 0.
func Range(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("range", 1, 3, args); err != nil {
		return nil, err
	}
	bounds := make([]float64, 0, 3)
	for _, arg := range args {
		n, err := number("range", arg)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, n)
	}
	start, end, step := 0.0, bounds[0], 1.0
	if len(bounds) > 1 {
		start, end = bounds[0], bounds[1]
	}
	if len(bounds) > 2 {
		step = bounds[2]
	}
	if step == 0 || math.IsNaN(step) {
		return nil, errors.New(errors.InvalidArgument, "range() step must not be zero")
	}
	count := math.Ceil((end - start) / step)
	if count <= 0 || math.IsNaN(count) {
		return object.NewArray(nil), nil
	}
	if count > MaxRangeSize {
		return nil, errors.New(errors.InvalidArgument,
			"range() would produce %.0f items (limit %d)", count, MaxRangeSize)
	}
	items := make([]object.Object, 0, int(count))
	for i := 0; i < int(count); i++ {
		items = append(items, object.NewNumber(start+float64(i)*step))
	}
	return object.NewArray(items), nil
}

// Concat joins arrays into one array, or strings into one string.
func Concat(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("concat", 1, -1, args); err != nil {
		return nil, err
	}
	switch args[0].(type) {
	case *object.String:
		var out []rune
		for _, arg := range args {
			s, err := object.AsString(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, []rune(s)...)
		}
		return object.NewString(string(out)), nil
	case *object.Array:
		var out []object.Object
		for _, arg := range args {
			arr, err := object.AsArray(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, arr.Value()...)
		}
		return object.NewArray(out), nil
	}
	return nil, errors.New(errors.TypeMismatch,
		"concat() expects arrays or strings (%s given)", args[0].Type())
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
