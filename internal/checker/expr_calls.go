package checker

import (
	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/symbols"
	"github.com/vela-lang/vela/internal/types"
)

// expandMultiReturn implements spec §4.5 rule 3: whenever a list of
// expressions ends in a call expression, type that call first and
// append an ExtraRet for each of its remaining return values. Used by
// call arguments here, and by declaration/assignment RHS, return
// operands, and for-in operands in stmt.go.
func (c *Checker) expandMultiReturn(exps []ast.Exp) []ast.Exp {
	if len(exps) == 0 {
		return exps
	}
	last := c.Synthesize(exps[len(exps)-1])
	exps[len(exps)-1] = last

	cf, ok := last.(*ast.CallFunc)
	if !ok {
		return exps
	}
	for i := 1; i < len(cf.Types); i++ {
		er := &ast.ExtraRet{Token: cf.Pos(), Call: cf, Index: i}
		er.SetType(cf.Types[i])
		exps = append(exps, er)
	}
	return exps
}

// unimplementedBuiltins names catalog entries SPEC_FULL §5.2 keeps on
// the books specifically to reject: `require` (module imports are out
// of scope per spec §1's Non-goals) and the `table` module's mutating
// helpers (this pass treats Table as a purely structural type with no
// statically-checked runtime operations).
var unimplementedBuiltins = map[string]string{
	"require":       "module imports are not implemented",
	"table.insert":  "table library functions are not implemented",
	"table.remove":  "table library functions are not implemented",
}

func builtinName(fn ast.Exp) (string, bool) {
	ve, ok := fn.(*ast.VarExp)
	if !ok {
		return "", false
	}
	vn, ok := ve.V.(*ast.VarName)
	if !ok {
		return "", false
	}
	bb, ok := vn.Name.(symbols.BuiltinBind)
	if !ok {
		return "", false
	}
	return bb.Name, true
}

// synthesizeCallFunc implements spec §4.4's `CallFunc` rule.
func (c *Checker) synthesizeCallFunc(e *ast.CallFunc) ast.Exp {
	fn := c.Synthesize(e.Fn)
	e.Fn = fn

	if name, ok := builtinName(fn); ok {
		if msg, unimpl := unimplementedBuiltins[name]; unimpl {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeNotImplemented, "%s", msg))
		}
	}

	ft, ok := fn.GetType().(types.Function)
	if !ok {
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeBadBinary,
			"cannot call a value of type %s", types.ToString(fn.GetType())))
	}

	args := c.expandMultiReturn(e.Args)
	if len(args) != len(ft.Args) {
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeArityMismatch,
			"function expects %d argument(s) but got %d", len(ft.Args), len(args)))
	}
	for i := range args {
		args[i] = c.Verify(args[i], ft.Args[i], "argument %d", i+1)
	}
	e.Args = args

	if len(ft.Rets) == 0 {
		e.SetType(types.Void{})
	} else {
		e.SetType(ft.Rets[0])
	}
	e.Types = ft.Rets
	return e
}
