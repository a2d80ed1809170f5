package checker

import (
	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/symbols"
	"github.com/vela-lang/vela/internal/types"
)

// CheckVar resolves a Var node (spec §4.6, component C4/C6 collaboration)
// and returns the node to use in its place — ordinarily the same node,
// but a VarDot projecting a module field is replaced outright by a flat
// VarName (spec §4.5 rule 1, §3 invariant "Var.Dot nodes ... have been
// flattened").
func (c *Checker) CheckVar(v ast.Var) ast.Var {
	switch vv := v.(type) {
	case *ast.VarName:
		return c.checkVarName(vv)
	case *ast.VarDot:
		return c.checkVarDot(vv)
	case *ast.VarBracket:
		return c.checkVarBracket(vv)
	default:
		panic("checker: unhandled var node")
	}
}

func (c *Checker) checkVarName(v *ast.VarName) ast.Var {
	b := c.lookup(v, v.Ident)
	v.Name = b
	v.SetType(c.bindingType(v, b))
	return v
}

// bindingType implements the per-kind adoption rules of spec §4.6.
func (c *Checker) bindingType(at ast.Node, b ast.Binding) types.Type {
	switch bind := b.(type) {
	case symbols.TypeBind:
		diagnostics.Abort(diagnostics.NewTypeError(at.Pos(), diagnostics.CodeNotAValue,
			"type name used as a value"))
	case symbols.LocalBind:
		return bind.Decl.Type
	case symbols.GlobalBind:
		return bind.Decl.Type
	case symbols.FunctionBind:
		return bind.Decl.Type
	case symbols.BuiltinBind:
		return bind.Type
	case symbols.ModuleBind:
		if bind.IsMain {
			return types.Module{}
		}
		diagnostics.Abort(diagnostics.NewScopeError(at.Pos(), diagnostics.CodeBareModule,
			"cannot reference module '%s' without dot notation", bind.Name))
	}
	panic("checker: unhandled binding kind")
}

func (c *Checker) checkVarDot(v *ast.VarDot) ast.Var {
	if vn, name, ok := asSimpleNameExp(v.Lhs); ok {
		if b, found := c.scope.FindSymbol(name); found {
			if mb, isMod := b.(symbols.ModuleBind); isMod {
				return c.flattenModuleDot(v, vn, mb)
			}
		}
	}

	lhs := c.Synthesize(v.Lhs)
	v.Lhs = lhs
	t := lhs.GetType()
	if !types.IsIndexable(t) {
		diagnostics.Abort(diagnostics.NewTypeError(v.Pos(), diagnostics.CodeNotIndexable,
			"cannot access field '%s' on non-indexable type %s", v.Field, types.ToString(t)))
	}
	fields := types.Indices(t)
	ft, ok := fields[v.Field]
	if !ok {
		// SPEC_FULL §5.1: name the indexed type, not just the field.
		diagnostics.Abort(diagnostics.NewTypeError(v.Pos(), diagnostics.CodeNoSuchField,
			"%s has no field '%s'", types.ToString(t), v.Field))
	}
	v.SetType(ft)
	return v
}

// flattenModuleDot implements spec §4.5 rule 1's first two bullets.
func (c *Checker) flattenModuleDot(v *ast.VarDot, vn *ast.VarName, mb symbols.ModuleBind) ast.Var {
	combined := mb.Name + "." + v.Field
	out := &ast.VarName{Token: v.Token, Ident: combined}

	if mb.IsMain {
		b, ok := c.scope.FindSymbol(combined)
		if !ok {
			diagnostics.Abort(diagnostics.NewScopeError(v.Pos(), diagnostics.CodeUnknownName,
				"'%s' is not declared", combined))
		}
		out.Name = b
		out.SetType(c.bindingType(v, b))
		return out
	}

	ft, ok := c.catalog.Qualified[combined]
	if !ok {
		diagnostics.Abort(diagnostics.NewTypeError(v.Pos(), diagnostics.CodeUnknownQualified,
			"unknown function '%s'", combined))
	}
	out.Name = symbols.BuiltinBind{Name: combined, Type: ft}
	out.SetType(ft)
	return out
}

func (c *Checker) checkVarBracket(v *ast.VarBracket) ast.Var {
	arr := c.Synthesize(v.Arr)
	v.Arr = arr
	arrType, ok := arr.GetType().(types.Array)
	if !ok {
		diagnostics.Abort(diagnostics.NewTypeError(v.Pos(), diagnostics.CodeNotIndexable,
			"expected an array, found %s", types.ToString(arr.GetType())))
	}
	idx := c.Verify(v.Index, types.Integer{}, "array index")
	v.Index = idx
	v.SetType(arrType.Elem)
	return v
}

// asSimpleNameExp reports whether exp is a bare name reference
// (`VarExp` wrapping a `VarName`), the shape spec §4.5 rule 1 requires
// before even considering module-dot flattening.
func asSimpleNameExp(exp ast.Exp) (*ast.VarName, string, bool) {
	ve, ok := exp.(*ast.VarExp)
	if !ok {
		return nil, "", false
	}
	vn, ok := ve.V.(*ast.VarName)
	if !ok {
		return nil, "", false
	}
	return vn, vn.Ident, true
}
