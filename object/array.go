package object

import (
	"strings"

	"github.com/cloudcmds/imp/errors"
)

// Array is an ordered sequence of values. Arrays are treated as values:
// the builtins that "modify" an array return a new one.
type Array struct {
	items []Object
}

func (a *Array) Type() Type {
	return ARRAY
}

// Value returns the underlying items. Callers must not modify the slice.
func (a *Array) Value() []Object {
	return a.items
}

func (a *Array) Len() int {
	return len(a.items)
}

// Get returns the item at index i. Negative indexes count from the end.
func (a *Array) Get(i int) (Object, error) {
	idx, err := a.index(i)
	if err != nil {
		return nil, err
	}
	return a.items[idx], nil
}

// With returns a copy of the array with the item at index i replaced.
func (a *Array) With(i int, value Object) (*Array, error) {
	idx, err := a.index(i)
	if err != nil {
		return nil, err
	}
	items := a.Copy()
	items[idx] = value
	return NewArray(items), nil
}

// Append returns a new array holding the items of a followed by values.
func (a *Array) Append(values ...Object) *Array {
	items := make([]Object, 0, len(a.items)+len(values))
	items = append(items, a.items...)
	items = append(items, values...)
	return NewArray(items)
}

// Copy returns a shallow copy of the items.
func (a *Array) Copy() []Object {
	items := make([]Object, len(a.items))
	copy(items, a.items)
	return items
}

func (a *Array) index(i int) (int, error) {
	idx := i
	if idx < 0 {
		idx += len(a.items)
	}
	if idx < 0 || idx >= len(a.items) {
		return 0, errors.New(errors.IndexOutOfBounds,
			"index %d out of bounds for array of length %d", i, len(a.items))
	}
	return idx, nil
}

func (a *Array) String() string {
	parts := make([]string, 0, len(a.items))
	for _, item := range a.items {
		parts = append(parts, item.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (a *Array) Inspect() string {
	parts := make([]string, 0, len(a.items))
	for _, item := range a.items {
		parts = append(parts, item.Inspect())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (a *Array) Interface() any {
	items := make([]any, 0, len(a.items))
	for _, item := range a.items {
		items = append(items, item.Interface())
	}
	return items
}

func NewArray(items []Object) *Array {
	if items == nil {
		items = []Object{}
	}
	return &Array{items: items}
}

// NewStringArray returns an array of String values.
func NewStringArray(values []string) *Array {
	items := make([]Object, 0, len(values))
	for _, v := range values {
		items = append(items, NewString(v))
	}
	return NewArray(items)
}
