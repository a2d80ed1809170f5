package checker

import (
	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/symbols"
	"github.com/vela-lang/vela/internal/types"
)

// ResolveType converts a syntactic type node into a semantic type (spec
// §4.3, component C6). Every case either returns a well-formed
// types.Type or aborts with a scope/type error — there is no third
// outcome.
func (c *Checker) ResolveType(syn ast.SyntaxType) types.Type {
	switch t := syn.(type) {
	case *ast.TypeNil:
		return types.Nil{}

	case *ast.TypeModule:
		return types.Module{}

	case *ast.TypeName:
		return c.resolveTypeName(t)

	case *ast.TypeArray:
		return types.Array{Elem: c.ResolveType(t.Elem)}

	case *ast.TypeTable:
		fields := make(map[string]types.Type, len(t.Fields))
		for _, f := range t.Fields {
			if _, dup := fields[f.Name]; dup {
				diagnostics.Abort(diagnostics.NewTypeError(t.Pos(), diagnostics.CodeDuplicateField,
					"duplicate field '%s' in table type", f.Name))
			}
			fields[f.Name] = c.ResolveType(f.Type)
		}
		return types.Table{Fields: fields}

	case *ast.TypeFunction:
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = c.ResolveType(a)
		}
		rets := make([]types.Type, len(t.Rets))
		for i, r := range t.Rets {
			rets[i] = c.ResolveType(r)
		}
		return types.Function{Args: args, Rets: rets}

	default:
		panic("checker: unhandled syntax type node")
	}
}

// resolveTypeName implements spec §4.3's `Name(n)` case, including the
// `string` dual-namespace special case (spec §9): `string` is bound as a
// non-main ModuleBind (so `string.upper(...)` resolves), but when it
// appears in a type position the resolver maps it straight to String
// instead of rejecting it as "not a type".
func (c *Checker) resolveTypeName(t *ast.TypeName) types.Type {
	b, ok := c.scope.FindSymbol(t.Name)
	if !ok {
		diagnostics.Abort(diagnostics.NewScopeError(t.Pos(), diagnostics.CodeUnknownType,
			"unknown type '%s'", t.Name))
	}
	switch bind := b.(type) {
	case symbols.TypeBind:
		return bind.Type
	case symbols.ModuleBind:
		if bind.Name == "string" {
			return types.String{}
		}
		diagnostics.Abort(diagnostics.NewTypeError(t.Pos(), diagnostics.CodeUnknownType,
			"'%s' is a module, not a type", t.Name))
	case recordInProgress:
		diagnostics.Abort(diagnostics.NewScopeError(t.Pos(), diagnostics.CodeUnknownType,
			"record '%s' cannot reference itself", bind.Name))
	}
	diagnostics.Abort(diagnostics.NewTypeError(t.Pos(), diagnostics.CodeUnknownType,
		"'%s' is not a type", t.Name))
	panic("unreachable")
}
