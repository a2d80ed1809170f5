package checker

import (
	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/builtins"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/symbols"
	"github.com/vela-lang/vela/internal/token"
	"github.com/vela-lang/vela/internal/types"
)

// primitiveTypeNames are the type-level names installed into the root
// scope before any program code runs (spec §4.8 step 1). "string" is
// deliberately absent here: it is installed as a built-in module below,
// and resolve.go's dual-namespace special case maps it to types.String
// when it appears in a type position (spec §9).
var primitiveTypeNames = map[string]types.Type{
	"nil":     types.Nil{},
	"boolean": types.Boolean{},
	"integer": types.Integer{},
	"float":   types.Float{},
	"any":     types.Any{},
}

// Run is the program driver (component C9, spec §4.8): it installs
// primitives and built-ins into a fresh root scope, checks every
// top-level item, and returns either the decorated program or the first
// diagnostic raised (spec §4.2's abort-on-first-error contract).
func Run(program *ast.Program, catalog *builtins.Catalog) (*ast.Program, *diagnostics.Error) {
	c := New(catalog)
	var out *ast.Program
	err := diagnostics.Catch(func() {
		c.installPrimitives()
		c.installBuiltins()
		out = c.checkProgram(program)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Checker) installPrimitives() {
	for name, t := range primitiveTypeNames {
		c.scope.AddSymbol(name, symbols.TypeBind{Type: t})
	}
}

func (c *Checker) installBuiltins() {
	for name, fn := range c.catalog.Functions {
		c.scope.AddSymbol(name, symbols.BuiltinBind{Name: name, Type: fn})
	}
	for modName := range c.catalog.Modules {
		c.scope.AddSymbol(modName, symbols.ModuleBind{Name: modName, IsMain: false})
	}
}

// topLevelKind is the letrec-group partitioning key (spec §4.8 step 3):
// consecutive top-level items of the same kind class form one group,
// processed together so same-group declarations can see each other
// before any body is checked.
type topLevelKind int

const (
	kindType topLevelKind = iota
	kindVar
	kindFunc
	kindStat
)

func kindOf(tl ast.TopLevel) topLevelKind {
	switch tl.(type) {
	case *ast.TLTypealias, *ast.TLRecord:
		return kindType
	case *ast.TLVar:
		return kindVar
	case *ast.TLFunc:
		return kindFunc
	default:
		return kindStat
	}
}

type topLevelGroup struct {
	kind  topLevelKind
	items []ast.TopLevel
}

func partitionTopLevel(tls []ast.TopLevel) []topLevelGroup {
	var groups []topLevelGroup
	for _, tl := range tls {
		k := kindOf(tl)
		if n := len(groups); n > 0 && groups[n-1].kind == k {
			groups[n-1].items = append(groups[n-1].items, tl)
			continue
		}
		groups = append(groups, topLevelGroup{kind: k, items: []ast.TopLevel{tl}})
	}
	return groups
}

// checkProgram implements spec §4.8's top-level algorithm.
func (c *Checker) checkProgram(p *ast.Program) *ast.Program {
	popRet := c.pushReturnTypes([]types.Type{types.Module{}})
	defer popRet()

	c.rejectMisplacedReturn(p.Tls)

	for _, g := range partitionTopLevel(p.Tls) {
		switch g.kind {
		case kindType:
			c.processTypeGroup(g.items)
		case kindVar:
			c.processVarGroup(g.items)
		case kindFunc:
			c.processFuncGroup(g.items)
		case kindStat:
			c.processStatGroup(g.items)
		}
	}

	if n := len(p.Tls); n > 0 {
		if ts, ok := p.Tls[n-1].(*ast.TLStat); ok {
			if _, ok := ts.Stat.(*ast.Return); ok {
				p.Tls = p.Tls[:n-1]
			}
		}
	}
	return p
}

// rejectMisplacedReturn enforces "only the last top-level item may be a
// Return" (spec §4.8 step 4).
func (c *Checker) rejectMisplacedReturn(tls []ast.TopLevel) {
	for i, tl := range tls {
		ts, ok := tl.(*ast.TLStat)
		if !ok {
			continue
		}
		if _, ok := ts.Stat.(*ast.Return); ok && i != len(tls)-1 {
			diagnostics.Abort(diagnostics.NewTypeError(tl.Pos(), diagnostics.CodeMissingReturn,
				"'return' may only appear as the last item of the program"))
		}
	}
}

// recordInProgress is installed as a sentinel binding while a record's
// own fields are being resolved, so a field type that names the record
// itself is caught and rejected rather than silently structurally
// recursing (spec §9 "self-referential records are rejected").
type recordInProgress struct{ Name string }

func (recordInProgress) BindingKind() string { return "record-in-progress" }

var _ ast.Binding = recordInProgress{}

func (c *Checker) processTypeGroup(items []ast.TopLevel) {
	for _, item := range items {
		switch tl := item.(type) {
		case *ast.TLTypealias:
			t := c.ResolveType(tl.Type)
			c.scope.AddSymbol(tl.Name, symbols.TypeBind{Type: t})

		case *ast.TLRecord:
			c.scope.AddSymbol(tl.Name, recordInProgress{Name: tl.Name})
			fieldTypes := make(map[string]types.Type, len(tl.Fields))
			order := make([]string, 0, len(tl.Fields))
			for _, f := range tl.Fields {
				if _, dup := fieldTypes[f.Name]; dup {
					diagnostics.Abort(diagnostics.NewTypeError(tl.Pos(), diagnostics.CodeDuplicateField,
						"duplicate field '%s' in record '%s'", f.Name, tl.Name))
				}
				fieldTypes[f.Name] = c.ResolveType(f.Type)
				order = append(order, f.Name)
			}
			rec := types.Record{Name: tl.Name, FieldOrder: order, FieldTypes: fieldTypes}
			tl.Type = rec
			c.scope.AddSymbol(tl.Name, symbols.TypeBind{Type: rec})
		}
	}
}

// processVarGroup implements top-level `local`/`global` declarations,
// including the single module-declaring form `local M: Module` that
// names the program's own main module (spec §3's "exactly at most one
// declaration... carries the main-module role"). Its initializer, if
// any, must verify as a Module — in practice that means an empty `{}`
// (spec §8 scenario S1: `local m: module = {}` then `return m`), since
// verifyInitlist rejects anything with fields. Declarations after that
// point become fields of M, reachable both by their bare name and as
// "M.field" (spec §4.5 rule 1); a name already claimed as a field is
// rejected rather than silently rebound (spec §4.1 "duplicate module
// fields are rejected by C9").
func (c *Checker) processVarGroup(items []ast.TopLevel) {
	for _, item := range items {
		tl := item.(*ast.TLVar)

		if _, ok := tl.Decl.TypeAnn.(*ast.TypeModule); ok {
			if c.mainModuleBound {
				diagnostics.Abort(diagnostics.NewTypeError(tl.Pos(), diagnostics.CodeDuplicateMainMod,
					"the program already declared a main module"))
			}
			c.mainModuleBound = true
			c.mainModuleName = tl.Decl.Name
			tl.Decl.Type = types.Module{}
			if tl.Exp != nil {
				tl.Exp = c.Verify(tl.Exp, types.Module{}, "module declaration of '%s'", tl.Decl.Name)
			}
			c.scope.AddSymbol(tl.Decl.Name, symbols.ModuleBind{Name: tl.Decl.Name, IsMain: true})
			continue
		}

		tl.Exp = c.checkInitializerExp(tl.Decl, tl.Exp)
		bind := symbols.GlobalBind{Decl: tl.Decl}
		c.scope.AddSymbol(tl.Decl.Name, bind)
		if c.mainModuleBound {
			c.rejectDuplicateModuleField(tl.Pos(), tl.Decl.Name)
			tl.Decl.ModName = c.mainModuleName
			c.scope.AddSymbol(c.mainModuleName+"."+tl.Decl.Name, bind)
		}
	}
}

// rejectDuplicateModuleField implements spec §4.1's duplicate-module-
// field check: a second top-level declaration claiming the same field
// name on the main module is rejected rather than silently overwriting
// the first binding the way a bare scope rebind would (symbols.Table's
// own AddSymbol never rejects a redefinition within one scope, so this
// check has to run here, against the module's own qualified namespace,
// before the rebind happens).
func (c *Checker) rejectDuplicateModuleField(pos token.Position, field string) {
	qualified := c.mainModuleName + "." + field
	if c.scope.IsDefinedLocally(qualified) {
		diagnostics.Abort(diagnostics.NewTypeError(pos, diagnostics.CodeDuplicateField,
			"module '%s' already has a field '%s'", c.mainModuleName, field))
	}
}

// processFuncGroup implements top-level function declarations as a
// letrec group: every signature in the group is registered before any
// body is checked, so mutually recursive functions can call each other
// (spec §4.8 step 3).
func (c *Checker) processFuncGroup(items []ast.TopLevel) {
	funcs := make([]*ast.TLFunc, 0, len(items))
	for _, item := range items {
		tl := item.(*ast.TLFunc)
		funcs = append(funcs, tl)

		ft, ok := c.ResolveType(tl.Func.Decl.TypeAnn).(types.Function)
		if !ok {
			panic("checker: function declaration's type annotation did not resolve to a Function")
		}
		tl.Func.Decl.Type = ft

		switch nv := tl.Func.NameVar.(type) {
		case *ast.VarName:
			bind := symbols.FunctionBind{Decl: tl.Func.Decl}
			c.scope.AddSymbol(nv.Ident, bind)
			nv.Name = bind
			nv.SetType(ft)
			if c.mainModuleBound {
				c.rejectDuplicateModuleField(nv.Pos(), nv.Ident)
				tl.Func.Decl.ModName = c.mainModuleName
				c.scope.AddSymbol(c.mainModuleName+"."+nv.Ident, bind)
			}

		case *ast.VarDot:
			_, baseName, ok := asSimpleNameExp(nv.Lhs)
			if !ok || !c.mainModuleBound || baseName != c.mainModuleName {
				diagnostics.Abort(diagnostics.NewScopeError(nv.Pos(), diagnostics.CodeUnknownName,
					"function declared for an unknown module"))
			}
			c.rejectDuplicateModuleField(nv.Pos(), nv.Field)
			combined := baseName + "." + nv.Field
			bind := symbols.FunctionBind{Decl: tl.Func.Decl}
			tl.Func.Decl.ModName = baseName
			c.scope.AddSymbol(combined, bind)

			flat := &ast.VarName{Token: nv.Token, Ident: combined, Name: bind}
			flat.SetType(ft)
			tl.Func.NameVar = flat

		default:
			panic("checker: unhandled function name var")
		}
	}

	for _, tl := range funcs {
		c.checkFuncStat(tl.Func)
	}
}

func (c *Checker) processStatGroup(items []ast.TopLevel) {
	for _, item := range items {
		switch tl := item.(type) {
		case *ast.TLStat:
			tl.Stat = c.checkStat(tl.Stat)
		case *ast.TLImport:
			diagnostics.Abort(diagnostics.NewTypeError(tl.Pos(), diagnostics.CodeNotImplemented,
				"module imports are not implemented"))
		default:
			panic("checker: unhandled top-level statement kind")
		}
	}
}
