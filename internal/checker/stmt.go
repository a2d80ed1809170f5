package checker

import (
	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/symbols"
	"github.com/vela-lang/vela/internal/types"
)

func bindLocal(decl *ast.Decl) symbols.LocalBind {
	return symbols.LocalBind{Decl: decl}
}

// checkBlock implements spec §4.7's block rule: a fresh scope, each
// statement checked in sequence, popped on the way out.
func (c *Checker) checkBlock(b *ast.Block) {
	pop := c.pushScope()
	defer pop()
	for i, s := range b.Stats {
		b.Stats[i] = c.checkStat(s)
	}
}

// checkStat dispatches a single statement (component C8, spec §4.7).
func (c *Checker) checkStat(s ast.Stat) ast.Stat {
	switch st := s.(type) {
	case *ast.DeclStat:
		return c.checkDeclStat(st)
	case *ast.Block:
		c.checkBlock(st)
		return st
	case *ast.While:
		return c.checkWhile(st)
	case *ast.Repeat:
		return c.checkRepeat(st)
	case *ast.ForNum:
		return c.checkForNum(st)
	case *ast.ForIn:
		return c.checkForIn(st)
	case *ast.Assign:
		return c.checkAssign(st)
	case *ast.CallStat:
		st.Call = c.Synthesize(st.Call)
		return st
	case *ast.Return:
		return c.checkReturn(st)
	case *ast.If:
		return c.checkIf(st)
	case *ast.Break:
		return st
	case *ast.FuncStat:
		return c.checkFuncStat(st)
	}
	panic("checker: unhandled statement node")
}

// checkInitializerExp implements spec §4.7's `check_initializer_exp`
// helper: a declaration with a type annotation verifies its initializer
// against that annotation; one with no annotation synthesizes the
// initializer and adopts its type.
func (c *Checker) checkInitializerExp(decl *ast.Decl, exp ast.Exp) ast.Exp {
	if decl.TypeAnn != nil {
		decl.Type = c.ResolveType(decl.TypeAnn)
		return c.Verify(exp, decl.Type, "declaration of '%s'", decl.Name)
	}
	typed := c.Synthesize(exp)
	decl.Type = typed.GetType()
	return typed
}

func (c *Checker) checkDeclStat(s *ast.DeclStat) ast.Stat {
	exps := c.expandMultiReturn(s.Exps)
	if len(exps) != len(s.Decls) {
		diagnostics.Abort(diagnostics.NewTypeError(s.Pos(), diagnostics.CodeArityMismatch,
			"declaration has %d name(s) but %d value(s)", len(s.Decls), len(exps)))
	}
	for i, decl := range s.Decls {
		exps[i] = c.checkInitializerExp(decl, exps[i])
		c.scope.AddSymbol(decl.Name, bindLocal(decl))
	}
	s.Exps = exps
	return s
}

func (c *Checker) checkWhile(s *ast.While) ast.Stat {
	s.Cond = c.Verify(s.Cond, types.Boolean{}, "while condition")
	c.checkBlock(s.Body)
	return s
}

// checkRepeat implements spec §4.7's repeat-until rule: the until
// condition is checked in the SAME scope as the body (so a local
// declared in the body is visible to the condition), unlike While.
func (c *Checker) checkRepeat(s *ast.Repeat) ast.Stat {
	pop := c.pushScope()
	defer pop()
	for i, st := range s.Body.Stats {
		s.Body.Stats[i] = c.checkStat(st)
	}
	s.Cond = c.Verify(s.Cond, types.Boolean{}, "until condition")
	return s
}

// checkForNum implements spec §4.5 rule 4 (defaulting a missing step to
// the literal 1, or 1.0 for a float loop) together with spec §4.7's
// numeric-for rule. start is
// checked via check_initializer_exp so an explicit type annotation on the
// loop variable is verified against rather than silently overridden by
// whatever start synthesizes to.
func (c *Checker) checkForNum(s *ast.ForNum) ast.Stat {
	s.Start = c.checkInitializerExp(s.Decl, s.Start)
	numType := s.Decl.Type
	if !types.IsNumeric(numType) {
		diagnostics.Abort(diagnostics.NewTypeError(s.Pos(), diagnostics.CodeMismatch,
			"numeric for: start value must be a number, found %s", types.ToString(numType)))
	}
	s.Limit = c.Verify(s.Limit, numType, "numeric for limit")

	if s.Step == nil {
		if _, isFloat := numType.(types.Float); isFloat {
			one := &ast.FloatLit{Token: s.Pos(), Value: 1}
			one.SetType(types.Float{})
			s.Step = one
		} else {
			one := &ast.IntegerLit{Token: s.Pos(), Value: 1}
			one.SetType(types.Integer{})
			s.Step = one
		}
	}
	s.Step = c.Verify(s.Step, numType, "numeric for step")

	pop := c.pushScope()
	defer pop()
	c.scope.AddSymbol(s.Decl.Name, bindLocal(s.Decl))
	for i, st := range s.Body.Stats {
		s.Body.Stats[i] = c.checkStat(st)
	}
	return s
}

// checkForIn implements spec §4.7's iterator/state/control protocol: at
// least three control expressions (iterator function, state, initial
// control — a trailing call may expand into more), every one of them
// synthesized before its type is inspected, the iterator required to
// take (any, any) and return exactly as many values as there are loop
// names, and state/control required to be any. Each loop variable binds
// to its own declared type (checked consistent with the iterator's
// matching return type) or, absent an annotation, to that return type
// directly.
func (c *Checker) checkForIn(s *ast.ForIn) ast.Stat {
	for i := 0; i < len(s.Exps)-1; i++ {
		s.Exps[i] = c.Synthesize(s.Exps[i])
	}
	exps := c.expandMultiReturn(s.Exps)
	if len(exps) < 3 {
		diagnostics.Abort(diagnostics.NewTypeError(s.Pos(), diagnostics.CodeArityMismatch,
			"for-in requires at least 3 control values (iterator, state, control), found %d", len(exps)))
	}

	iterFn, ok := exps[0].GetType().(types.Function)
	if !ok {
		diagnostics.Abort(diagnostics.NewTypeError(s.Pos(), diagnostics.CodeMismatch,
			"for-in: first control value must be a function, found %s", types.ToString(exps[0].GetType())))
	}
	anyType := types.Any{}
	if len(iterFn.Args) != 2 || !types.Equals(iterFn.Args[0], anyType) || !types.Equals(iterFn.Args[1], anyType) {
		diagnostics.Abort(diagnostics.NewTypeError(s.Pos(), diagnostics.CodeMismatch,
			"for-in: iterator must accept (any, any), found %s", types.ToString(iterFn)))
	}
	if len(iterFn.Rets) != len(s.Decls) {
		diagnostics.Abort(diagnostics.NewTypeError(s.Pos(), diagnostics.CodeArityMismatch,
			"for-in: iterator returns %d value(s) but %d name(s) are declared", len(iterFn.Rets), len(s.Decls)))
	}

	exps[1] = c.Verify(exps[1], anyType, "for-in state")
	for i := 2; i < len(exps); i++ {
		exps[i] = c.Verify(exps[i], anyType, "for-in control")
	}
	s.Exps = exps

	pop := c.pushScope()
	defer pop()
	for i, decl := range s.Decls {
		ret := iterFn.Rets[i]
		if decl.TypeAnn != nil {
			decl.Type = c.ResolveType(decl.TypeAnn)
			if !types.Consistent(decl.Type, ret) {
				diagnostics.Abort(diagnostics.NewTypeError(decl.Pos(), diagnostics.CodeMismatch,
					"for-in: loop variable '%s' declared as %s but iterator returns %s",
					decl.Name, types.ToString(decl.Type), types.ToString(ret)))
			}
		} else {
			decl.Type = ret
		}
		c.scope.AddSymbol(decl.Name, bindLocal(decl))
	}
	for i, st := range s.Body.Stats {
		s.Body.Stats[i] = c.checkStat(st)
	}
	return s
}

// checkAssign implements spec §4.7's assignment rule, including the
// module-field special case: assigning through a flattened module
// field rewrites to a plain global rebind rather than an indexed
// write, since modules have no runtime table representation (spec §9).
func (c *Checker) checkAssign(s *ast.Assign) ast.Stat {
	for i, v := range s.Vars {
		s.Vars[i] = c.checkAssignTarget(v)
	}
	exps := c.expandMultiReturn(s.Exps)
	if len(exps) != len(s.Vars) {
		diagnostics.Abort(diagnostics.NewTypeError(s.Pos(), diagnostics.CodeArityMismatch,
			"assignment has %d target(s) but %d value(s)", len(s.Vars), len(exps)))
	}
	for i, v := range s.Vars {
		exps[i] = c.Verify(exps[i], v.GetType(), "assignment to '%s'", targetName(v))
	}
	s.Exps = exps
	return s
}

func (c *Checker) checkAssignTarget(v ast.Var) ast.Var {
	checked := c.CheckVar(v)
	if vn, ok := checked.(*ast.VarName); ok {
		switch vn.Name.(type) {
		case symbols.FunctionBind:
			diagnostics.Abort(diagnostics.NewTypeError(checked.Pos(), diagnostics.CodeAssignToFunction,
				"cannot assign to function '%s'", vn.Ident))
		case symbols.BuiltinBind:
			diagnostics.Abort(diagnostics.NewTypeError(checked.Pos(), diagnostics.CodeAssignToFunction,
				"cannot assign to built-in '%s'", vn.Ident))
		}
	}
	return checked
}

func targetName(v ast.Var) string {
	switch vv := v.(type) {
	case *ast.VarName:
		return vv.Ident
	case *ast.VarDot:
		return vv.Field
	default:
		return "<index>"
	}
}

func (c *Checker) checkReturn(s *ast.Return) ast.Stat {
	expected := c.currentReturnTypes()
	exps := c.expandMultiReturn(s.Exps)
	if len(exps) != len(expected) {
		diagnostics.Abort(diagnostics.NewTypeError(s.Pos(), diagnostics.CodeArityMismatch,
			"return has %d value(s) but %d are expected", len(exps), len(expected)))
	}
	for i := range exps {
		exps[i] = c.Verify(exps[i], expected[i], "return value %d", i+1)
	}
	s.Exps = exps
	return s
}

func (c *Checker) checkIf(s *ast.If) ast.Stat {
	s.Cond = c.Verify(s.Cond, types.Boolean{}, "if condition")
	c.checkBlock(s.Then)
	if s.Else != nil {
		s.Else = c.checkStat(s.Else)
	}
	return s
}

// checkFuncStat checks a function declaration's body against its declared
// type. Top-level declarations arrive already resolved and bound by
// processFuncGroup (driver.go), which also flattens `function mod.name(...)`;
// a function statement nested in a block is resolved here and bound as a
// FunctionBind in the enclosing scope. A nested statement with a qualified
// name is reported as not implemented.
func (c *Checker) checkFuncStat(s *ast.FuncStat) ast.Stat {
	if s.Decl.Type == nil {
		nv, ok := s.NameVar.(*ast.VarName)
		if !ok {
			diagnostics.Abort(diagnostics.NewTypeError(s.Pos(), diagnostics.CodeNotImplemented,
				"qualified function names are only supported at top level"))
		}
		s.Decl.Type = c.ResolveType(s.Decl.TypeAnn)
		bind := symbols.FunctionBind{Decl: s.Decl}
		c.scope.AddSymbol(nv.Ident, bind)
		nv.Name = bind
		nv.SetType(s.Decl.Type)
	}
	ft := s.Decl.Type.(types.Function)

	pop := c.pushScope()
	defer pop()
	popRet := c.pushReturnTypes(ft.Rets)
	defer popRet()

	for i, arg := range s.Value.Args {
		arg.Type = ft.Args[i]
		c.scope.AddSymbol(arg.Name, bindLocal(arg))
	}
	c.checkBlock(s.Value.Body)
	s.Value.SetType(ft)
	return s
}
