package builtins

import "github.com/cloudcmds/imp/object"

// Docs returns documentation for all builtin functions and constants.
func Docs() []object.FuncSpec {
	return builtinDocs
}

var builtinDocs = []object.FuncSpec{
	{Name: "void", Doc: "The empty value", Returns: "void"},
	{Name: "true", Doc: "Boolean true", Returns: "bool"},
	{Name: "false", Doc: "Boolean false", Returns: "bool"},
	{Name: "hello_world", Doc: "Print a greeting", Returns: "void", Example: "hello_world()"},
	{Name: "print", Doc: "Print values with no separator", Args: []string{"values..."}, Returns: "void", Example: `print("x = ", x)`},
	{Name: "println", Doc: "Print values followed by a newline", Args: []string{"values..."}, Returns: "void", Example: `println("hi")`},
	{Name: "add", Doc: "Sum of numbers", Args: []string{"x..."}, Returns: "number", Example: "add(1, 2, 3)"},
	{Name: "sub", Doc: "Subtract the remaining numbers from the first", Args: []string{"x", "y..."}, Returns: "number", Example: "sub(10, 3)"},
	{Name: "mult", Doc: "Product of numbers", Args: []string{"x", "y..."}, Returns: "number", Example: "mult(2, 4)"},
	{Name: "div", Doc: "Divide the first number by the rest", Args: []string{"x", "y..."}, Returns: "number", Example: "div(9, 3)"},
	{Name: "pow", Doc: "Raise to a power, left to right", Args: []string{"x", "y..."}, Returns: "number", Example: "pow(2, 10)"},
	{Name: "mod", Doc: "Remainder of x / y", Args: []string{"x", "y"}, Returns: "number", Example: "mod(7, 3)"},
	{Name: "eq", Doc: "Equality of two values of the same type", Args: []string{"a", "b"}, Returns: "bool", Example: "eq(x, 1)"},
	{Name: "ne", Doc: "Inequality of two values of the same type", Args: []string{"a", "b"}, Returns: "bool", Example: `ne(s, "")`},
	{Name: "lt", Doc: "a < b for numbers", Args: []string{"a", "b"}, Returns: "bool", Example: "lt(x, 5)"},
	{Name: "le", Doc: "a <= b for numbers", Args: []string{"a", "b"}, Returns: "bool", Example: "le(x, 5)"},
	{Name: "gt", Doc: "a > b for numbers", Args: []string{"a", "b"}, Returns: "bool", Example: "gt(x, 5)"},
	{Name: "ge", Doc: "a >= b for numbers", Args: []string{"a", "b"}, Returns: "bool", Example: "ge(x, 5)"},
	{Name: "cmp", Doc: "a < b for numbers", Args: []string{"a", "b"}, Returns: "bool", Example: "while (cmp(x, 5)) { ... }"},
	{Name: "not", Doc: "Boolean negation", Args: []string{"b"}, Returns: "bool", Example: "not(done)"},
	{Name: "and", Doc: "True if every argument is true", Args: []string{"a", "b..."}, Returns: "bool", Example: "and(a, b)"},
	{Name: "or", Doc: "True if any argument is true", Args: []string{"a", "b..."}, Returns: "bool", Example: "or(a, b)"},
	{Name: "len", Doc: "Length of an array or string", Args: []string{"x"}, Returns: "number", Example: "len([1, 2])"},
	{Name: "push", Doc: "New array with values appended", Args: []string{"array", "values..."}, Returns: "array", Example: "push(a, 4) -> a"},
	{Name: "get", Doc: "Item at an index; negative counts from the end", Args: []string{"x", "index"}, Returns: "any", Example: "get(a, 0)"},
	{Name: "set", Doc: "New array with one item replaced", Args: []string{"array", "index", "value"}, Returns: "array", Example: `set(a, 0, "x") -> a`},
	{Name: "slice", Doc: "Items from start up to end", Args: []string{"x", "start", "end?"}, Returns: "array|string", Example: "slice(a, 1, 3)"},
	{Name: "range", Doc: "Numbers from start up to end by step", Args: []string{"start?", "end", "step?"}, Returns: "array", Example: "range(0, 10, 2)"},
	{Name: "concat", Doc: "Join arrays or strings", Args: []string{"x..."}, Returns: "array|string", Example: `concat("a", "b")`},
	{Name: "str", Doc: "Display form of a value", Args: []string{"x"}, Returns: "string", Example: "str(1.5)"},
	{Name: "num", Doc: "Convert a string or bool to a number", Args: []string{"x"}, Returns: "number", Example: `num("42")`},
	{Name: "upper", Doc: "Uppercase a string", Args: []string{"s"}, Returns: "string", Example: `upper("abc")`},
	{Name: "lower", Doc: "Lowercase a string", Args: []string{"s"}, Returns: "string", Example: `lower("ABC")`},
	{Name: "trim", Doc: "Strip surrounding whitespace", Args: []string{"s"}, Returns: "string", Example: `trim(" x ")`},
	{Name: "split", Doc: "Split a string by a separator", Args: []string{"s", "sep"}, Returns: "array", Example: `split("a,b", ",")`},
	{Name: "join", Doc: "Join array items with a separator", Args: []string{"array", "sep"}, Returns: "string", Example: `join(["a", "b"], ",")`},
	{Name: "contains", Doc: "Substring or item membership", Args: []string{"x", "value"}, Returns: "bool", Example: `contains("team", "ea")`},
	{Name: "type", Doc: "Type name of a value", Args: []string{"x"}, Returns: "string", Example: "type([])"},
}
