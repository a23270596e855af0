package object

import (
	"fmt"
	"maps"
)

// Module is a named bundle of values supplied by a capability. A module is
// never bound in scope itself; "use" merges its contents into the scope.
type Module struct {
	name     string
	contents map[string]Object
}

func (m *Module) Type() Type {
	return MODULE
}

func (m *Module) Name() string {
	return m.name
}

// Get returns the named member of the module.
func (m *Module) Get(name string) (Object, bool) {
	obj, ok := m.contents[name]
	return obj, ok
}

// Names returns the sorted member names.
func (m *Module) Names() []string {
	return Keys(m.contents)
}

// Contents returns a copy of the module members.
func (m *Module) Contents() map[string]Object {
	return maps.Clone(m.contents)
}

func (m *Module) String() string {
	return fmt.Sprintf("module(%s)", m.name)
}

func (m *Module) Inspect() string {
	return m.String()
}

func (m *Module) Interface() any {
	return nil
}

// NewBuiltinsModule returns a module holding the given members. Builtins
// are tagged with the module name so error messages can report it.
func NewBuiltinsModule(name string, contents map[string]Object) *Module {
	members := make(map[string]Object, len(contents))
	for k, v := range contents {
		if b, ok := v.(*Builtin); ok {
			v = b.WithModule(name)
		}
		members[k] = v
	}
	return &Module{name: name, contents: members}
}
