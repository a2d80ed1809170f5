// Package checker implements components C6–C9 of the semantic analysis
// pass: the type resolver, the dual-mode expression checker, the
// statement checker, and the program driver (spec §4.3–§4.8). It is the
// hardest and most interesting part of the repository, per spec §1 —
// grounded throughout on funxy's internal/analyzer walker (a struct
// holding the live symbol table plus whatever per-pass bookkeeping the
// pass needs, dispatch by type switch on the AST node, abort-on-first-
// error via a typed signal) but solving spec.md's much narrower
// bidirectional synthesize/verify problem instead of funxy's own
// Hindley-Milner-with-traits inference.
package checker

import (
	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/builtins"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/symbols"
	"github.com/vela-lang/vela/internal/types"
)

// Checker is one-shot: a fresh value must be created per check_program
// invocation, so the symbol table and the return-types stack never leak
// state across unrelated programs (spec §9 "Global mutable checker
// state").
type Checker struct {
	scope    *symbols.Table
	catalog  *builtins.Catalog
	retStack [][]types.Type

	// mainModuleBound is set the moment a declaration is recognized as
	// the main module (spec §3 invariant: "Exactly at most one
	// declaration in the program carries the main-module role").
	mainModuleBound bool
	// mainModuleName is the name that declaration bound, used to build
	// "name.field" qualified bindings for every later top-level Var/Func
	// (spec §4.5 rule 1).
	mainModuleName string
}

// New creates a Checker with catalog registered but no program-specific
// state installed yet; Run (driver.go) does that.
func New(catalog *builtins.Catalog) *Checker {
	return &Checker{
		scope:   symbols.NewRoot(),
		catalog: catalog,
	}
}

// pushScope installs a fresh nested scope as current and returns a
// closure that restores the previous one. Paired with `defer`, this pops
// on every exit path including a diagnostics.Abort unwind (spec §4.1/§5).
func (c *Checker) pushScope() func() {
	prev := c.scope
	c.scope = symbols.NewEnclosed(prev)
	return func() { c.scope = prev }
}

func (c *Checker) pushReturnTypes(rets []types.Type) func() {
	c.retStack = append(c.retStack, rets)
	return func() { c.retStack = c.retStack[:len(c.retStack)-1] }
}

func (c *Checker) currentReturnTypes() []types.Type {
	if len(c.retStack) == 0 {
		return nil
	}
	return c.retStack[len(c.retStack)-1]
}

// lookup resolves a name to its binding or aborts with a scope error
// (spec §4.6 "Unknown name: scope error").
func (c *Checker) lookup(pos ast.Node, name string) ast.Binding {
	b, ok := c.scope.FindSymbol(name)
	if !ok {
		diagnostics.Abort(diagnostics.NewScopeError(pos.Pos(), diagnostics.CodeUnknownName,
			"variable '%s' is not declared", name))
	}
	return b
}
