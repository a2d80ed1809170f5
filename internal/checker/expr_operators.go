package checker

import (
	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/types"
)

// synthesizeUnop implements spec §4.4's unary operator rules.
func (c *Checker) synthesizeUnop(e *ast.Unop) ast.Exp {
	inner := c.Synthesize(e.Exp)
	e.Exp = inner
	t := inner.GetType()

	switch e.Op {
	case ast.OpLen:
		switch t.(type) {
		case types.Array, types.String:
			e.SetType(types.Integer{})
			return e
		}
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeBadUnary,
			"'#' requires an array or a string, found %s", types.ToString(t)))

	case ast.OpNeg:
		if !types.IsNumeric(t) {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeBadUnary,
				"unary '-' requires a number, found %s", types.ToString(t)))
		}
		e.SetType(t)
		return e

	case ast.OpBNot:
		if _, ok := t.(types.Integer); !ok {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeBadUnary,
				"'~' requires an integer, found %s", types.ToString(t)))
		}
		e.SetType(types.Integer{})
		return e

	case ast.OpNot:
		if !types.IsCondition(t) {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeNotCondition,
				"'not' requires a boolean, found %s", types.ToString(t)))
		}
		e.SetType(types.Boolean{})
		return e
	}
	panic("checker: unhandled unary operator")
}

// synthesizeBinop implements spec §4.4's operator-class table.
func (c *Checker) synthesizeBinop(e *ast.Binop) ast.Exp {
	switch e.Op {
	case ast.OpAnd, ast.OpOr:
		return c.synthesizeLogical(e)
	}

	lhs := c.Synthesize(e.Lhs)
	e.Lhs = lhs
	rhs := c.Synthesize(e.Rhs)
	e.Rhs = rhs
	lt, rt := lhs.GetType(), rhs.GetType()

	switch e.Op {
	case ast.OpEq, ast.OpNeq:
		if mixedIntFloat(lt, rt) {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeMixedCompare,
				"comparisons between float and integers are not yet implemented"))
		}
		if !types.Equals(lt, rt) {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeBadBinary,
				"cannot compare %s with %s", types.ToString(lt), types.ToString(rt)))
		}
		e.SetType(types.Boolean{})
		return e

	case ast.OpLt, ast.OpGt, ast.OpLte, ast.OpGte:
		if mixedIntFloat(lt, rt) {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeMixedCompare,
				"comparisons between float and integers are not yet implemented"))
		}
		switch {
		case isInteger(lt) && isInteger(rt),
			isFloat(lt) && isFloat(rt),
			isString(lt) && isString(rt):
			e.SetType(types.Boolean{})
			return e
		}
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeBadBinary,
			"cannot order %s and %s", types.ToString(lt), types.ToString(rt)))

	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpMod, ast.OpIDiv:
		if !types.IsNumeric(lt) || !types.IsNumeric(rt) {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeBadBinary,
				"arithmetic requires numbers, found %s and %s", types.ToString(lt), types.ToString(rt)))
		}
		if isInteger(lt) && isInteger(rt) {
			e.SetType(types.Integer{})
			return e
		}
		e.Lhs = coerceToFloat(e.Lhs)
		e.Rhs = coerceToFloat(e.Rhs)
		e.SetType(types.Float{})
		return e

	case ast.OpDiv, ast.OpPow:
		if !types.IsNumeric(lt) || !types.IsNumeric(rt) {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeBadBinary,
				"arithmetic requires numbers, found %s and %s", types.ToString(lt), types.ToString(rt)))
		}
		e.Lhs = coerceToFloat(e.Lhs)
		e.Rhs = coerceToFloat(e.Rhs)
		e.SetType(types.Float{})
		return e

	case ast.OpConcat:
		if !isString(lt) || !isString(rt) {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeBadBinary,
				"'..' requires strings, found %s and %s", types.ToString(lt), types.ToString(rt)))
		}
		e.SetType(types.String{})
		return e

	case ast.OpBOr, ast.OpBAnd, ast.OpBXor, ast.OpShl, ast.OpShr:
		if !isInteger(lt) || !isInteger(rt) {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeBadBinary,
				"bitwise operators require integers, found %s and %s", types.ToString(lt), types.ToString(rt)))
		}
		e.SetType(types.Integer{})
		return e
	}
	panic("checker: unhandled binary operator")
}

// synthesizeLogical implements `and`/`or`: short-circuit operators whose
// result type is the right-hand side's type (spec §4.4).
func (c *Checker) synthesizeLogical(e *ast.Binop) ast.Exp {
	lhs := c.Synthesize(e.Lhs)
	e.Lhs = lhs
	if !types.IsCondition(lhs.GetType()) {
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeNotCondition,
			"'%s' requires a boolean on the left, found %s", e.Op, types.ToString(lhs.GetType())))
	}
	rhs := c.Synthesize(e.Rhs)
	e.Rhs = rhs
	if !types.IsCondition(rhs.GetType()) {
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeNotCondition,
			"'%s' requires a boolean on the right, found %s", e.Op, types.ToString(rhs.GetType())))
	}
	e.SetType(rhs.GetType())
	return e
}

// --- small type-test helpers (spec §4.5 rule 5's "mixed integer/float") ---

func isInteger(t types.Type) bool {
	_, ok := t.(types.Integer)
	return ok
}

func isFloat(t types.Type) bool {
	_, ok := t.(types.Float)
	return ok
}

func isString(t types.Type) bool {
	_, ok := t.(types.String)
	return ok
}

func mixedIntFloat(a, b types.Type) bool {
	return (isInteger(a) && isFloat(b)) || (isFloat(a) && isInteger(b))
}

// coerceToFloat wraps an Integer-typed expression in a ToFloat node
// (spec §4.5 rule 5); a Float-typed expression passes through unchanged.
func coerceToFloat(e ast.Exp) ast.Exp {
	if isFloat(e.GetType()) {
		return e
	}
	tf := &ast.ToFloat{Token: e.Pos(), Exp: e}
	tf.SetType(types.Float{})
	return tf
}
