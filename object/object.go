// Package object provides the runtime values of the imp language.
//
// Values are a closed set of types. Code that needs the underlying Go value
// type switches on the concrete type:
//
//	switch obj := obj.(type) {
//	case *object.String:
//		// do something with obj.Value()
//	case *object.Number:
//		// do something with obj.Value()
//	}
//
// The Type() method of each object returns its type name, such as "string"
// or "number", which is also what the "type" builtin reports.
package object

import (
	"sort"
)

// Type of an object as a string.
type Type string

// Type constants
const (
	ARRAY    Type = "array"
	BOOL     Type = "bool"
	BUILTIN  Type = "builtin"
	FUNCTION Type = "function"
	MODULE   Type = "module"
	NUMBER   Type = "number"
	STRING   Type = "string"
	VOID     Type = "void"
)

var (
	Void  = &VoidType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface that all imp values implement.
type Object interface {
	// Type of the object.
	Type() Type

	// String returns the display form used by print and str.
	String() string

	// Inspect returns a debug representation, with strings quoted.
	Inspect() string

	// Interface converts the object to a native Go value.
	Interface() any
}

// Callable reports whether obj can be invoked by a call expression.
func Callable(obj Object) bool {
	switch obj.(type) {
	case *Function, *Builtin:
		return true
	}
	return false
}

// Keys returns the keys of an object map as a sorted slice of strings.
func Keys(m map[string]Object) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// TypeName returns the type of obj, or "nothing" when obj is nil.
func TypeName(obj Object) string {
	if obj == nil {
		return "nothing"
	}
	return string(obj.Type())
}
