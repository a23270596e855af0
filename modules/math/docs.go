package math

import "github.com/cloudcmds/imp/object"

// Docs returns documentation for the math module.
func Docs() []object.FuncSpec {
	return mathDocs
}

// ModuleDoc returns the module-level documentation.
func ModuleDoc() string {
	return "Mathematical functions and constants"
}

var mathDocs = []object.FuncSpec{
	// Constants
	{Name: "pi", Doc: "Pi (3.14159...)", Returns: "number"},
	{Name: "e", Doc: "Euler's number (2.718...)", Returns: "number"},
	// Functions
	{Name: "abs", Doc: "Absolute value", Args: []string{"x"}, Returns: "number"},
	{Name: "floor", Doc: "Floor (round down)", Args: []string{"x"}, Returns: "number"},
	{Name: "ceil", Doc: "Ceiling (round up)", Args: []string{"x"}, Returns: "number"},
	{Name: "round", Doc: "Round to nearest integer", Args: []string{"x"}, Returns: "number"},
	{Name: "sqrt", Doc: "Square root", Args: []string{"x"}, Returns: "number"},
	{Name: "min", Doc: "Minimum of values or of an array", Args: []string{"x..."}, Returns: "number"},
	{Name: "max", Doc: "Maximum of values or of an array", Args: []string{"x..."}, Returns: "number"},
}
