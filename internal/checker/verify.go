package checker

import (
	"fmt"

	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/types"
)

// Verify checks exp against an expected type (spec §4.4
// `check_exp_verify`, component C7). context/args are used only to word
// the mismatch diagnostic ("argument 2", "cast", "field 'x'", ...).
// Verify is the only place an implicit Cast is inserted for a merely
// Consistent (not Equals) pair of types — callers must use the returned
// expression.
func (c *Checker) Verify(exp ast.Exp, expected types.Type, context string, args ...interface{}) ast.Exp {
	label := fmt.Sprintf(context, args...)

	switch e := exp.(type) {
	case *ast.Initlist:
		return c.verifyInitlist(e, expected, label)
	case *ast.Lambda:
		return c.verifyLambda(e, expected, label)
	case *ast.Paren:
		e.Exp = c.Verify(e.Exp, expected, label)
		e.SetType(e.Exp.GetType())
		return e
	}

	typed := c.Synthesize(exp)
	found := typed.GetType()

	if types.Equals(found, expected) {
		return typed
	}
	if types.Consistent(found, expected) {
		cast := &ast.Cast{Token: typed.Pos(), Exp: typed, Target: nil, Implicit: true}
		cast.SetType(expected)
		return cast
	}
	diagnostics.Abort(diagnostics.NewTypeError(typed.Pos(), diagnostics.CodeMismatch,
		"%s: expected %s, found %s", label, types.ToString(expected), types.ToString(found)))
	panic("unreachable")
}

// verifyInitlist implements spec §4.4's three Initlist-verify shapes:
// against an Array (positional fields only), against a Table/Record
// (named fields only), and the Module special case — an empty `{}`
// initializer is the only Initlist shape that can stand for a Module
// (spec §8 scenario S1's `local m: module = {}`); anything with fields
// still errors, since a module's fields are separate top-level
// declarations, never initializer entries.
func (c *Checker) verifyInitlist(e *ast.Initlist, expected types.Type, label string) ast.Exp {
	switch t := expected.(type) {
	case types.Array:
		for i, f := range e.Fields {
			lf, ok := f.(*ast.ListField)
			if !ok {
				diagnostics.Abort(diagnostics.NewTypeError(f.Pos(), diagnostics.CodeMismatch,
					"%s: array initializer field %d must not be named", label, i+1))
			}
			lf.Exp = c.Verify(lf.Exp, t.Elem, "array element %d", i+1)
			e.Fields[i] = lf
		}
		e.SetType(t)
		return e

	case types.Table:
		return c.verifyInitlistFields(e, t, t.Fields, label)

	case types.Record:
		return c.verifyInitlistFields(e, t, t.FieldTypes, label)

	case types.Module:
		if len(e.Fields) == 0 {
			e.SetType(t)
			return e
		}
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeMismatch,
			"%s: a table initializer cannot produce a module", label))
	}

	diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeMismatch,
		"%s: cannot use a table initializer as %s", label, types.ToString(expected)))
	panic("unreachable")
}

func (c *Checker) verifyInitlistFields(e *ast.Initlist, expected types.Type, fieldTypes map[string]types.Type, label string) ast.Exp {
	seen := make(map[string]bool, len(e.Fields))
	for i, f := range e.Fields {
		rf, ok := f.(*ast.RecField)
		if !ok {
			diagnostics.Abort(diagnostics.NewTypeError(f.Pos(), diagnostics.CodeMismatch,
				"%s: every field of this initializer must be named", label))
		}
		if seen[rf.Name] {
			diagnostics.Abort(diagnostics.NewTypeError(rf.Pos(), diagnostics.CodeDuplicateField,
				"%s: duplicate field '%s'", label, rf.Name))
		}
		seen[rf.Name] = true

		ft, ok := fieldTypes[rf.Name]
		if !ok {
			diagnostics.Abort(diagnostics.NewTypeError(rf.Pos(), diagnostics.CodeNoSuchField,
				"%s: no such field '%s'", label, rf.Name))
		}
		rf.Exp = c.Verify(rf.Exp, ft, "field '%s'", rf.Name)
		e.Fields[i] = rf
	}
	for name := range fieldTypes {
		if !seen[name] {
			diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeMissingField,
				"%s: missing field '%s'", label, name))
		}
	}
	e.SetType(expected)
	return e
}

// verifyLambda binds the lambda's declared parameters against the
// expected function type's argument types, checks the body in a fresh
// scope with the expected return tuple pushed (spec §4.4's Lambda
// case), and pops that scope on the way out — including on abort.
func (c *Checker) verifyLambda(e *ast.Lambda, expected types.Type, label string) ast.Exp {
	ft, ok := expected.(types.Function)
	if !ok {
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeMismatch,
			"%s: expected %s, found a function literal", label, types.ToString(expected)))
	}
	if len(e.Args) != len(ft.Args) {
		diagnostics.Abort(diagnostics.NewTypeError(e.Pos(), diagnostics.CodeArityMismatch,
			"%s: function literal declares %d parameter(s), expected %d", label, len(e.Args), len(ft.Args)))
	}

	popScope := c.pushScope()
	defer popScope()
	popRet := c.pushReturnTypes(ft.Rets)
	defer popRet()

	for i, decl := range e.Args {
		decl.Type = ft.Args[i]
		c.scope.AddSymbol(decl.Name, bindLocal(decl))
	}
	c.checkBlock(e.Body)

	e.SetType(ft)
	return e
}
