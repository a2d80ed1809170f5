// Package fixtures builds ast.Program values by hand for use by checker
// tests and by cmd/velac's demonstration subcommands. There is no lexer
// or parser in this repository's scope (spec §1's "external
// collaborators"), so there is no source text to drive tests from — the
// trees these helpers build stand in for what a parser would have
// produced, the same way a hand-rolled AST literal does in funxy's own
// internal/vm compiler tests.
package fixtures

import (
	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/token"
)

var line int

// at returns a fresh, strictly increasing position so every node in a
// fixture has a distinguishable location for diagnostics.
func at() token.Position {
	line++
	return token.Position{File: "fixture", Line: line, Column: 1}
}

func Nil() *ast.NilLit     { n := &ast.NilLit{Token: at()}; return n }
func Bool(v bool) *ast.BoolLit { return &ast.BoolLit{Token: at(), Value: v} }
func Int(v int64) *ast.IntegerLit { return &ast.IntegerLit{Token: at(), Value: v} }
func Float(v float64) *ast.FloatLit { return &ast.FloatLit{Token: at(), Value: v} }
func Str(v string) *ast.StringLit { return &ast.StringLit{Token: at(), Value: v} }

func Name(ident string) *ast.VarExp {
	return &ast.VarExp{Token: at(), V: &ast.VarName{Token: at(), Ident: ident}}
}

func Dot(lhs ast.Exp, field string) *ast.VarExp {
	return &ast.VarExp{Token: at(), V: &ast.VarDot{Token: at(), Lhs: lhs, Field: field}}
}

func Bracket(arr, index ast.Exp) *ast.VarExp {
	return &ast.VarExp{Token: at(), V: &ast.VarBracket{Token: at(), Arr: arr, Index: index}}
}

func Un(op ast.UnaryOp, e ast.Exp) *ast.Unop {
	return &ast.Unop{Token: at(), Op: op, Exp: e}
}

func Bin(op ast.BinaryOp, l, r ast.Exp) *ast.Binop {
	return &ast.Binop{Token: at(), Op: op, Lhs: l, Rhs: r}
}

func Call(fn ast.Exp, args ...ast.Exp) *ast.CallFunc {
	return &ast.CallFunc{Token: at(), Fn: fn, Args: args}
}

func CastTo(e ast.Exp, target ast.SyntaxType) *ast.Cast {
	return &ast.Cast{Token: at(), Exp: e, Target: target}
}

func Lambda(args []*ast.Decl, body *ast.Block) *ast.Lambda {
	return &ast.Lambda{Token: at(), Args: args, Body: body}
}

func RecField(name string, e ast.Exp) *ast.RecField {
	return &ast.RecField{Token: at(), Name: name, Exp: e}
}

func ListField(e ast.Exp) *ast.ListField {
	return &ast.ListField{Token: at(), Exp: e}
}

func Initlist(fields ...ast.Field) *ast.Initlist {
	return &ast.Initlist{Token: at(), Fields: fields}
}

// --- syntax types ---

func TNil() *ast.TypeNil         { return &ast.TypeNil{Token: at()} }
func TModule() *ast.TypeModule   { return &ast.TypeModule{Token: at()} }
func TName(name string) *ast.TypeName { return &ast.TypeName{Token: at(), Name: name} }
func TArray(elem ast.SyntaxType) *ast.TypeArray { return &ast.TypeArray{Token: at(), Elem: elem} }

func TTable(fields ...ast.TypeTableField) *ast.TypeTable {
	return &ast.TypeTable{Token: at(), Fields: fields}
}

func TField(name string, t ast.SyntaxType) ast.TypeTableField {
	return ast.TypeTableField{Name: name, Type: t}
}

func TFunc(args []ast.SyntaxType, rets []ast.SyntaxType) *ast.TypeFunction {
	return &ast.TypeFunction{Token: at(), Args: args, Rets: rets}
}

// --- declarations / statements ---

func D(name string, ann ast.SyntaxType) *ast.Decl {
	return &ast.Decl{Token: at(), Name: name, TypeAnn: ann}
}

func Block(stats ...ast.Stat) *ast.Block {
	return &ast.Block{Token: at(), Stats: stats}
}

func DeclStat(decls []*ast.Decl, exps ...ast.Exp) *ast.DeclStat {
	return &ast.DeclStat{Token: at(), Decls: decls, Exps: exps}
}

func AssignStat(vars []ast.Var, exps ...ast.Exp) *ast.Assign {
	return &ast.Assign{Token: at(), Vars: vars, Exps: exps}
}

func WhileStat(cond ast.Exp, body *ast.Block) *ast.While {
	return &ast.While{Token: at(), Cond: cond, Body: body}
}

func RepeatStat(body *ast.Block, cond ast.Exp) *ast.Repeat {
	return &ast.Repeat{Token: at(), Body: body, Cond: cond}
}

func ForNumStat(decl *ast.Decl, start, limit, step ast.Exp, body *ast.Block) *ast.ForNum {
	return &ast.ForNum{Token: at(), Decl: decl, Start: start, Limit: limit, Step: step, Body: body}
}

func ForInStat(decls []*ast.Decl, exps []ast.Exp, body *ast.Block) *ast.ForIn {
	return &ast.ForIn{Token: at(), Decls: decls, Exps: exps, Body: body}
}

func CallStat(call ast.Exp) *ast.CallStat {
	return &ast.CallStat{Token: at(), Call: call}
}

func ReturnStat(exps ...ast.Exp) *ast.Return {
	return &ast.Return{Token: at(), Exps: exps}
}

func IfStat(cond ast.Exp, then *ast.Block, els ast.Stat) *ast.If {
	return &ast.If{Token: at(), Cond: cond, Then: then, Else: els}
}

func BreakStat() *ast.Break { return &ast.Break{Token: at()} }

// --- top level ---

func Program(file string, tls ...ast.TopLevel) *ast.Program {
	return &ast.Program{File: file, Tls: tls}
}

// MainModule builds the single `local M: Module` declaration that names
// the program's main module (spec §3's main-module role); it carries no
// initializer (see driver.go's processVarGroup).
func MainModule(name string) *ast.TLVar {
	return &ast.TLVar{Token: at(), Decl: D(name, TModule())}
}

func TLVarDecl(decl *ast.Decl, exp ast.Exp) *ast.TLVar {
	return &ast.TLVar{Token: at(), Decl: decl, Exp: exp}
}

func TLFuncDecl(nameVar ast.Var, decl *ast.Decl, value *ast.Lambda) *ast.TLFunc {
	return &ast.TLFunc{Token: at(), Func: &ast.FuncStat{Token: at(), NameVar: nameVar, Decl: decl, Value: value}}
}

// PlainFunc builds a top-level `function name(params): rets ... end`
// declaration with the usual VarName-shaped NameVar.
func PlainFunc(name string, params []*ast.Decl, rets []ast.SyntaxType, body *ast.Block) *ast.TLFunc {
	argTypes := make([]ast.SyntaxType, len(params))
	for i, p := range params {
		argTypes[i] = p.TypeAnn
	}
	decl := D(name, TFunc(argTypes, rets))
	nameVar := &ast.VarName{Token: at(), Ident: name}
	return TLFuncDecl(nameVar, decl, Lambda(params, body))
}

// QualifiedFunc builds `function mod.name(params): rets ... end`.
func QualifiedFunc(modName, field string, params []*ast.Decl, rets []ast.SyntaxType, body *ast.Block) *ast.TLFunc {
	argTypes := make([]ast.SyntaxType, len(params))
	for i, p := range params {
		argTypes[i] = p.TypeAnn
	}
	decl := D(field, TFunc(argTypes, rets))
	nameVar := &ast.VarDot{Token: at(), Lhs: Name(modName), Field: field}
	return TLFuncDecl(nameVar, decl, Lambda(params, body))
}

func Typealias(name string, t ast.SyntaxType) *ast.TLTypealias {
	return &ast.TLTypealias{Token: at(), Name: name, Type: t}
}

func Record(name string, fields ...ast.RecordField) *ast.TLRecord {
	return &ast.TLRecord{Token: at(), Name: name, Fields: fields}
}

func RField(name string, t ast.SyntaxType) ast.RecordField {
	return ast.RecordField{Name: name, Type: t}
}

func TLStatOf(s ast.Stat) *ast.TLStat {
	return &ast.TLStat{Token: at(), Stat: s}
}

func Import(path string) *ast.TLImport {
	return &ast.TLImport{Token: at(), Path: path}
}
