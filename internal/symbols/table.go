package symbols

import "github.com/vela-lang/vela/internal/ast"

// Table is a single lexical scope, chained to its enclosing scope
// through Outer (spec §4.1: "a stack of scopes"). The root table (Outer
// == nil) is the scope check_program installs primitives and built-ins
// into before analysis begins (spec §3 "Lifecycles").
type Table struct {
	Outer *Table
	store map[string]ast.Binding
}

// NewRoot creates the root (global) scope.
func NewRoot() *Table {
	return &Table{store: make(map[string]ast.Binding)}
}

// NewEnclosed creates a scope nested under outer.
func NewEnclosed(outer *Table) *Table {
	return &Table{Outer: outer, store: make(map[string]ast.Binding)}
}

// AddSymbol binds name in this scope. Spec §4.1: "No shadowing check
// across scopes (inner rebinds outer); redefinition within a single
// scope is not rejected at this level" — a second AddSymbol for the same
// name in the same Table silently overwrites the first, exactly like a
// Go map assignment would.
func (t *Table) AddSymbol(name string, b ast.Binding) {
	t.store[name] = b
}

// FindSymbol searches from this scope outward (spec §4.1).
func (t *Table) FindSymbol(name string) (ast.Binding, bool) {
	for s := t; s != nil; s = s.Outer {
		if b, ok := s.store[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// IsDefinedLocally reports whether name is bound in this exact scope
// (not an outer one) — used by C9 to reject duplicate module fields.
func (t *Table) IsDefinedLocally(name string) bool {
	_, ok := t.store[name]
	return ok
}
