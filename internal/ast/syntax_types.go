package ast

import "github.com/vela-lang/vela/internal/token"

// Syntactic (unresolved) type forms (spec §6 `Type`, resolved by C6 per
// spec §4.3). TypeName covers both a resolvable type name and the
// dual-purpose `string` name (spec §9).
type TypeNil struct {
	Token token.Position
}

func (n *TypeNil) Pos() token.Position { return n.Token }
func (*TypeNil) syntaxTypeNode()       {}

type TypeModule struct {
	Token token.Position
}

func (n *TypeModule) Pos() token.Position { return n.Token }
func (*TypeModule) syntaxTypeNode()       {}

type TypeName struct {
	Token token.Position
	Name  string
}

func (n *TypeName) Pos() token.Position { return n.Token }
func (*TypeName) syntaxTypeNode()       {}

type TypeArray struct {
	Token token.Position
	Elem  SyntaxType
}

func (n *TypeArray) Pos() token.Position { return n.Token }
func (*TypeArray) syntaxTypeNode()       {}

// TypeTableField is one `name: Type` entry of a syntactic table type.
type TypeTableField struct {
	Name string
	Type SyntaxType
}

type TypeTable struct {
	Token  token.Position
	Fields []TypeTableField
}

func (n *TypeTable) Pos() token.Position { return n.Token }
func (*TypeTable) syntaxTypeNode()       {}

type TypeFunction struct {
	Token token.Position
	Args  []SyntaxType
	Rets  []SyntaxType
}

func (n *TypeFunction) Pos() token.Position { return n.Token }
func (*TypeFunction) syntaxTypeNode()       {}
