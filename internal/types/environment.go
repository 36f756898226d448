package types

// VarInfo is what the environment tracks per bound name: its type and
// whether it may be reassigned.
type VarInfo struct {
	Type    Type
	Mutable bool
}

// Environment maps identifiers to their semantic type and mutability.
// Scoping is value-semantic: Clone copies the current bindings so that
// names introduced afterward in the clone never leak back into the
// parent. There is no push/pop stack and no aliasing between scopes.
type Environment struct {
	vars map[string]VarInfo
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]VarInfo)}
}

// Clone returns an independent copy of the environment's current
// bindings. Call this at every block or branch entry.
func (e *Environment) Clone() *Environment {
	cloned := make(map[string]VarInfo, len(e.vars))
	for name, info := range e.vars {
		cloned[name] = info
	}
	return &Environment{vars: cloned}
}

// Define binds name to a type and mutability, shadowing any existing
// binding of the same name in this environment.
func (e *Environment) Define(name string, t Type, mutable bool) {
	e.vars[name] = VarInfo{Type: t, Mutable: mutable}
}

// Lookup returns the binding for name, if any.
func (e *Environment) Lookup(name string) (VarInfo, bool) {
	info, ok := e.vars[name]
	return info, ok
}
