package object

import (
	"math"

	"github.com/cloudcmds/imp/errors"
)

// Equals reports whether a and b hold the same value. Only values of the
// same type can be compared, and functions, builtins and modules cannot be
// compared at all. Anything else is a type mismatch error. Equality is
// reflexive for every number, NaN included.
func Equals(a, b Object) (bool, error) {
	if a == nil || b == nil {
		return false, errors.New(errors.TypeMismatch,
			"cannot compare %s with %s", TypeName(a), TypeName(b))
	}
	if a.Type() != b.Type() {
		return false, errors.New(errors.TypeMismatch,
			"cannot compare %s with %s", a.Type(), b.Type())
	}
	switch a := a.(type) {
	case *String:
		return a.value == b.(*String).value, nil
	case *Number:
		x, y := a.value, b.(*Number).value
		return x == y || math.IsNaN(x) && math.IsNaN(y), nil
	case *Bool:
		return a.value == b.(*Bool).value, nil
	case *VoidType:
		return true, nil
	case *Array:
		other := b.(*Array)
		if len(a.items) != len(other.items) {
			return false, nil
		}
		for i, item := range a.items {
			eq, err := Equals(item, other.items[i])
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	}
	return false, errors.New(errors.TypeMismatch, "%s values cannot be compared", a.Type())
}

// Compare orders two numbers, returning -1, 0 or 1. Ordering is only
// defined between numbers.
func Compare(a, b Object) (int, error) {
	x, ok := a.(*Number)
	if !ok {
		return 0, errors.New(errors.TypeMismatch,
			"cannot order %s with %s (expected numbers)", TypeName(a), TypeName(b))
	}
	y, ok := b.(*Number)
	if !ok {
		return 0, errors.New(errors.TypeMismatch,
			"cannot order %s with %s (expected numbers)", TypeName(a), TypeName(b))
	}
	switch {
	case x.value < y.value:
		return -1, nil
	case x.value > y.value:
		return 1, nil
	}
	return 0, nil
}
