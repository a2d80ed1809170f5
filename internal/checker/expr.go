package checker

import (
	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/types"
)

// Synthesize infers a type for exp with no external context (spec §4.4
// `check_exp_synthesize`, component C7). The caller must use the
// returned expression in place of the input: some cases substitute the
// node outright (Cast peeling, qualified-name flattening reached through
// Var).
func (c *Checker) Synthesize(exp ast.Exp) ast.Exp {
	// Idempotent re-entry: a call expression's type may already have
	// been set by an earlier synthesize when its ExtraRet siblings were
	// expanded (spec §4.4 "Idempotent").
	if cf, ok := exp.(*ast.CallFunc); ok && cf.GetType() != nil {
		return cf
	}

	switch e := exp.(type) {
	case *ast.NilLit:
		e.SetType(types.Nil{})
		return e
	case *ast.BoolLit:
		e.SetType(types.Boolean{})
		return e
	case *ast.IntegerLit:
		e.SetType(types.Integer{})
		return e
	case *ast.FloatLit:
		e.SetType(types.Float{})
		return e
	case *ast.StringLit:
		e.SetType(types.String{})
		return e

	case *ast.VarExp:
		e.V = c.CheckVar(e.V)
		e.SetType(e.V.GetType())
		return e

	case *ast.Unop:
		return c.synthesizeUnop(e)
	case *ast.Binop:
		return c.synthesizeBinop(e)

	case *ast.Initlist:
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeNeedsHint,
			"cannot infer the type of a table initializer here; add a type annotation"))

	case *ast.Lambda:
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeNeedsHint,
			"cannot infer the type of a function literal here; add a type annotation"))

	case *ast.CallFunc:
		return c.synthesizeCallFunc(e)

	case *ast.CallMethod:
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeMethodNotSupported,
			"method calls are not implemented"))

	case *ast.Cast:
		return c.synthesizeCast(e)

	case *ast.Paren:
		inner := c.Synthesize(e.Exp)
		e.Exp = inner
		e.SetType(inner.GetType())
		return e

	case *ast.ExtraRet:
		e.SetType(e.Call.Types[e.Index])
		return e

	case *ast.ToFloat:
		if _, ok := e.Exp.GetType().(types.Integer); !ok {
			panic("checker: ToFloat wrapping a non-Integer expression")
		}
		e.SetType(types.Float{})
		return e
	}
	panic("checker: unhandled expression node in Synthesize")
}

// synthesizeCast implements spec §4.4's `Cast(exp, target)` rule,
// including the redundant-inner-cast peel.
func (c *Checker) synthesizeCast(e *ast.Cast) ast.Exp {
	target := c.ResolveType(e.Target)
	inner := c.Verify(e.Exp, target, "cast")
	e.Exp = inner

	for {
		ic, ok := e.Exp.(*ast.Cast)
		if !ok || ic.Target != nil {
			break
		}
		if !types.Equals(ic.GetType(), target) {
			break
		}
		e.Exp = ic.Exp
	}

	e.SetType(target)
	return e
}
