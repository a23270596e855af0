// Package builtins defines the functions and constants present in every
// imp program's root scope.
package builtins

import (
	"github.com/cloudcmds/imp/object"
)

func Builtins() map[string]object.Object {
	return map[string]object.Object{
		// constants
		"void":  object.Void,
		"true":  object.True,
		"false": object.False,

		// output
		"hello_world": object.NewBuiltin("hello_world", HelloWorld),
		"print":       object.NewBuiltin("print", Print),
		"println":     object.NewBuiltin("println", Println),

		// arithmetic
		"add":  object.NewBuiltin("add", Add),
		"sub":  object.NewBuiltin("sub", Sub),
		"mult": object.NewBuiltin("mult", Mult),
		"div":  object.NewBuiltin("div", Div),
		"pow":  object.NewBuiltin("pow", Pow),
		"mod":  object.NewBuiltin("mod", Mod),

		// comparison and logic
		"eq":  object.NewBuiltin("eq", Eq),
		"ne":  object.NewBuiltin("ne", Ne),
		"lt":  object.NewBuiltin("lt", Lt),
		"le":  object.NewBuiltin("le", Le),
		"gt":  object.NewBuiltin("gt", Gt),
		"ge":  object.NewBuiltin("ge", Ge),
		"cmp": object.NewBuiltin("cmp", Cmp),
		"not": object.NewBuiltin("not", Not),
		"and": object.NewBuiltin("and", And),
		"or":  object.NewBuiltin("or", Or),

		// arrays
		"len":    object.NewBuiltin("len", Len),
		"push":   object.NewBuiltin("push", Push),
		"get":    object.NewBuiltin("get", Get),
		"set":    object.NewBuiltin("set", Set),
		"slice":  object.NewBuiltin("slice", Slice),
		"range":  object.NewBuiltin("range", Range),
		"concat": object.NewBuiltin("concat", Concat),

		// strings and conversion
		"str":      object.NewBuiltin("str", Str),
		"num":      object.NewBuiltin("num", Num),
		"upper":    object.NewBuiltin("upper", Upper),
		"lower":    object.NewBuiltin("lower", Lower),
		"trim":     object.NewBuiltin("trim", Trim),
		"split":    object.NewBuiltin("split", Split),
		"join":     object.NewBuiltin("join", Join),
		"contains": object.NewBuiltin("contains", Contains),
		"type":     object.NewBuiltin("type", Type),
	}
}
