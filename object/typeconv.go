package object

import (
	"math"

	"github.com/cloudcmds/imp/errors"
)

func typeError(want string, obj Object) error {
	return errors.New(errors.TypeMismatch, "expected %s (%s given)", want, TypeName(obj))
}

func AsString(obj Object) (string, error) {
	s, ok := obj.(*String)
	if !ok {
		return "", typeError("a string", obj)
	}
	return s.value, nil
}

func AsNumber(obj Object) (float64, error) {
	n, ok := obj.(*Number)
	if !ok {
		return 0, typeError("a number", obj)
	}
	return n.value, nil
}

// AsInt returns the value of a number with no fractional part.
func AsInt(obj Object) (int, error) {
	n, ok := obj.(*Number)
	if !ok {
		return 0, typeError("an integer", obj)
	}
	if !n.IsInteger() || n.value > math.MaxInt32 || n.value < math.MinInt32 {
		return 0, errors.New(errors.InvalidArgument, "expected an integer (got %s)", n)
	}
	return int(n.value), nil
}

func AsBool(obj Object) (bool, error) {
	b, ok := obj.(*Bool)
	if !ok {
		return false, typeError("a bool", obj)
	}
	return b.value, nil
}

func AsArray(obj Object) (*Array, error) {
	a, ok := obj.(*Array)
	if !ok {
		return nil, typeError("an array", obj)
	}
	return a, nil
}

// AsStringSlice returns the items of an array of strings.
func AsStringSlice(obj Object) ([]string, error) {
	arr, err := AsArray(obj)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, arr.Len())
	for _, item := range arr.items {
		s, err := AsString(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// FromGoType converts a Go value to an object. Unsupported values
// convert to Void.
func FromGoType(value any) Object {
	switch v := value.(type) {
	case nil:
		return Void
	case Object:
		return v
	case string:
		return NewString(v)
	case bool:
		return NewBool(v)
	case int:
		return NewNumber(float64(v))
	case int64:
		return NewNumber(float64(v))
	case float64:
		return NewNumber(v)
	case []string:
		return NewStringArray(v)
	case []any:
		items := make([]Object, 0, len(v))
		for _, item := range v {
			items = append(items, FromGoType(item))
		}
		return NewArray(items)
	}
	return Void
}
