package object

import (
	"context"
	"fmt"
)

// BuiltinFunction holds the type of a native function. The scope is the
// live scope of the calling statement.
type BuiltinFunction func(ctx context.Context, scope *Scope, args ...Object) (Object, error)

// Builtin wraps a native function and implements the Object interface.
type Builtin struct {
	fn BuiltinFunction

	// The name of the function.
	name string

	// The name of the module the function originates from, if any.
	moduleName string
}

func (b *Builtin) Type() Type {
	return BUILTIN
}

func (b *Builtin) Value() BuiltinFunction {
	return b.fn
}

func (b *Builtin) Name() string {
	return b.name
}

// Key returns the fully-qualified name, e.g. "math.sqrt".
func (b *Builtin) Key() string {
	if b.moduleName == "" {
		return b.name
	}
	return fmt.Sprintf("%s.%s", b.moduleName, b.name)
}

func (b *Builtin) Call(ctx context.Context, scope *Scope, args ...Object) (Object, error) {
	return b.fn(ctx, scope, args...)
}

func (b *Builtin) String() string {
	return fmt.Sprintf("<native fn %s>", b.name)
}

func (b *Builtin) Inspect() string {
	return b.String()
}

func (b *Builtin) Interface() any {
	return nil
}

// WithModule returns a copy of the builtin that reports the given module name.
func (b *Builtin) WithModule(name string) *Builtin {
	return &Builtin{fn: b.fn, name: b.name, moduleName: name}
}

// NewBuiltin returns a new Builtin object that wraps the given function.
func NewBuiltin(name string, fn BuiltinFunction) *Builtin {
	return &Builtin{fn: fn, name: name}
}

// NewNoopBuiltin creates a builtin function that has no effect.
func NewNoopBuiltin(name string) *Builtin {
	return &Builtin{
		fn: func(ctx context.Context, scope *Scope, args ...Object) (Object, error) {
			return Void, nil
		},
		name: name,
	}
}
