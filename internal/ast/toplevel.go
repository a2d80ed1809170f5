package ast

import (
	"github.com/vela-lang/vela/internal/token"
	"github.com/vela-lang/vela/internal/types"
)

// Program is the root node of every module (spec §6 `Program{tls: [TopLevel]}`).
type Program struct {
	File string
	Tls  []TopLevel
}

func (p *Program) Pos() token.Position {
	if len(p.Tls) > 0 {
		return p.Tls[0].Pos()
	}
	return token.Position{File: p.File}
}

// TLVar is a top-level `local`/`global` declaration (spec §6 `Var(decl, exp)`).
type TLVar struct {
	Token token.Position
	Decl  *Decl
	Exp   Exp
}

func (n *TLVar) Pos() token.Position { return n.Token }
func (*TLVar) topLevelNode()         {}

// TLFunc is a top-level function declaration, sharing the FuncStat shape
// nested function statements use (spec §6 `Func(name, decl, value)`).
type TLFunc struct {
	Token token.Position
	Func  *FuncStat
}

func (n *TLFunc) Pos() token.Position { return n.Token }
func (*TLFunc) topLevelNode()         {}

// TLTypealias introduces a type-level name bound to another syntactic
// type (spec §6 `Typealias(name, type)`).
type TLTypealias struct {
	Token token.Position
	Name  string
	Type  SyntaxType
}

func (n *TLTypealias) Pos() token.Position { return n.Token }
func (*TLTypealias) topLevelNode()          {}

// RecordField is one `name: Type` entry of a `record` declaration.
type RecordField struct {
	Name string
	Type SyntaxType
}

// TLRecord declares a nominal Record type (spec §6 `Record(name, field_decls)`).
type TLRecord struct {
	Token  token.Position
	Name   string
	Fields []RecordField
	// Type is the resolved types.Record, attached once C9 registers it
	// (spec §3 "every record top-level node" carries `_type`).
	Type types.Type
}

func (n *TLRecord) Pos() token.Position { return n.Token }
func (*TLRecord) topLevelNode()          {}

// TLStat wraps a bare statement appearing at top level (spec §6 `Stat(stat)`).
type TLStat struct {
	Token token.Position
	Stat  Stat
}

func (n *TLStat) Pos() token.Position { return n.Token }
func (*TLStat) topLevelNode()          {}

// TLImport is a reserved, always-rejected top-level kind (SPEC_FULL §5.2):
// module imports are diagnosed as "not implemented" rather than silently
// accepted, giving the §4.8 step 4 "any other kind" rule a concrete shape
// to reject.
type TLImport struct {
	Token token.Position
	Path  string
}

func (n *TLImport) Pos() token.Position { return n.Token }
func (*TLImport) topLevelNode()          {}
