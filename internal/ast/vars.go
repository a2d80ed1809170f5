package ast

import "github.com/vela-lang/vela/internal/token"

// VarName is a bare identifier reference (spec §6 `Var.Name`). Name is
// mutated in place by qualified-name flattening (spec §4.5 rule 1) when a
// VarDot on a module turns into a combined "mod.field" VarName.
type VarName struct {
	varBase
	Token token.Position
	Ident string
}

func (n *VarName) Pos() token.Position { return n.Token }

// VarDot is a `lhs.field` projection (spec §6 `Var.Dot`). A VarDot whose
// Lhs is itself a VarExp wrapping a VarName that resolves to a
// ModuleBind is rewritten away entirely by qualified-name flattening; any
// VarDot surviving decoration necessarily projects a Table/Record field
// (spec §3 invariants).
type VarDot struct {
	varBase
	Token token.Position
	Lhs   Exp
	Field string
}

func (n *VarDot) Pos() token.Position { return n.Token }

// VarBracket is an `arr[index]` array element reference (spec §6
// `Var.Bracket`).
type VarBracket struct {
	varBase
	Token token.Position
	Arr   Exp
	Index Exp
}

func (n *VarBracket) Pos() token.Position { return n.Token }
