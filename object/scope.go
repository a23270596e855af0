package object

import "maps"

// Scope maps names to values. A single scope is shared by a function call,
// every block it runs and every function it calls, unless the evaluator is
// configured for call isolation, in which case calls get a child scope.
//
// Scope is not safe for concurrent use.
type Scope struct {
	vars   map[string]Object
	parent *Scope
}

// NewScope returns a root scope seeded with a copy of vars.
func NewScope(vars map[string]Object) *Scope {
	s := &Scope{vars: make(map[string]Object, len(vars))}
	maps.Copy(s.vars, vars)
	return s
}

// NewChildScope returns an empty scope whose lookups fall back to parent.
func NewChildScope(parent *Scope) *Scope {
	return &Scope{vars: map[string]Object{}, parent: parent}
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Get looks up name in this scope and then in its parents.
func (s *Scope) Get(name string) (Object, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if obj, ok := cur.vars[name]; ok {
			return obj, true
		}
	}
	return nil, false
}

// Set binds name in this scope, replacing any existing binding.
func (s *Scope) Set(name string, value Object) {
	s.vars[name] = value
}

// Delete removes name from this scope. It reports whether the name was bound.
// Bindings held by parent scopes are left untouched.
func (s *Scope) Delete(name string) bool {
	if _, ok := s.vars[name]; !ok {
		return false
	}
	delete(s.vars, name)
	return true
}

// Has reports whether name resolves in this scope or its parents.
func (s *Scope) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Len returns the number of bindings held directly by this scope.
func (s *Scope) Len() int {
	return len(s.vars)
}

// Names returns every name visible from this scope, sorted.
func (s *Scope) Names() []string {
	seen := map[string]Object{}
	for cur := s; cur != nil; cur = cur.parent {
		for k, v := range cur.vars {
			if _, ok := seen[k]; !ok {
				seen[k] = v
			}
		}
	}
	return Keys(seen)
}

// Import binds every member of the module in this scope.
func (s *Scope) Import(m *Module) {
	maps.Copy(s.vars, m.contents)
}
