// Package symbols implements the block-scoped symbol table (spec §4.1,
// component C4) and the binding kinds spec §3 lists. Grounded on funxy's
// internal/symbols (a *SymbolTable chained through an `outer` pointer,
// Define*/Find/IsDefinedLocally operations), trimmed to the six binding
// kinds spec.md's closed set names — no traits, no instances, no kind
// registry, none of the Hindley-Milner machinery funxy's symbol table
// carries for its own, much richer type system.
package symbols

import (
	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/types"
)

// TypeBind names a type-level binding (spec §3).
type TypeBind struct {
	Type types.Type
}

func (TypeBind) BindingKind() string { return "type" }

// LocalBind is a block-scoped value binding.
type LocalBind struct {
	Decl *ast.Decl
}

func (LocalBind) BindingKind() string { return "local" }

// GlobalBind is a module-level value binding.
type GlobalBind struct {
	Decl *ast.Decl
}

func (GlobalBind) BindingKind() string { return "global" }

// FunctionBind is a function declared by a function statement; spec §3
// disallows it as an assignment target.
type FunctionBind struct {
	Decl *ast.Decl
}

func (FunctionBind) BindingKind() string { return "function" }

// BuiltinBind references the built-in catalog (component C3) by name.
type BuiltinBind struct {
	Name string
	Type types.Type
}

func (BuiltinBind) BindingKind() string { return "builtin" }

// ModuleBind names a module — the program's own main module (IsMain
// true) or a built-in module (IsMain false), queried only through
// qualified access (spec §3/§4.5/§4.6).
type ModuleBind struct {
	Name   string
	IsMain bool
}

func (ModuleBind) BindingKind() string { return "module" }

var (
	_ ast.Binding = TypeBind{}
	_ ast.Binding = LocalBind{}
	_ ast.Binding = GlobalBind{}
	_ ast.Binding = FunctionBind{}
	_ ast.Binding = BuiltinBind{}
	_ ast.Binding = ModuleBind{}
)
