// Package env implements mal's lexically scoped environment: a keyed store
// of values with an optional parent, positional binding with a variadic
// "&" rest parameter, and closure capture.
//
// Grounded on internal/interp/runtime/environment.go's store/outer shape,
// with one deliberate divergence: mal symbols are case-sensitive, so lookup
// uses a plain map rather than the teacher's case-insensitive ident.Map.
package env

import (
	"fmt"

	"github.com/cwbudde/go-mal/internal/value"
)

// Environment is a symbol table for variable storage, chained to an
// optional parent for lexical scoping.
type Environment struct {
	store map[string]value.Value
	outer *Environment
}

// New creates a root-level environment with no outer scope.
func New() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// NewEnclosed creates an environment whose parent is outer.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]value.Value), outer: outer}
}

// Get retrieves a variable, searching the current environment and then
// parents outward. Returns the stored value directly: mal values are
// immutable after construction, so sharing by reference is safe and no
// defensive copy is needed (see DESIGN.md's Open Question resolution).
func (e *Environment) Get(name string) (value.Value, bool) {
	if val, ok := e.store[name]; ok {
		return val, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set updates an existing variable, searching outward for where it is
// defined. Returns an error if the variable is undefined anywhere in the
// chain; use Define to introduce a new binding.
func (e *Environment) Set(name string, val value.Value) error {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return nil
	}
	if e.outer != nil {
		return e.outer.Set(name, val)
	}
	return fmt.Errorf("undefined variable: %s", name)
}

// Define creates or overwrites a variable in the current scope only.
func (e *Environment) Define(name string, val value.Value) {
	e.store[name] = val
}

// Has reports whether name is defined in this environment or any parent.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// GetLocal retrieves a variable only from the current scope, without
// searching parents.
func (e *Environment) GetLocal(name string) (value.Value, bool) {
	val, ok := e.store[name]
	return val, ok
}

// Outer returns the parent environment, or nil at the root.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// NewChildWithBinds implements init_with_binds (spec §4.3): creates a child
// of e, binds params positionally to args, and — if rest is non-empty —
// binds rest to a List of whatever args remain beyond len(params). Arity is
// enforced here since it depends on whether a rest parameter is present:
// exact match with no rest, at-least match with one.
func (e *Environment) NewChildWithBinds(params []string, rest string, args []value.Value) (value.Env, *value.Error) {
	if rest == "" && len(args) != len(params) {
		return nil, value.NewError("missing operands")
	}
	if rest != "" && len(args) < len(params) {
		return nil, value.NewError("missing operands")
	}

	child := NewEnclosed(e)
	for i, p := range params {
		child.Define(p, args[i])
	}
	if rest != "" {
		child.Define(rest, &value.List{Elements: append([]value.Value{}, args[len(params):]...)})
	}
	return child, nil
}
