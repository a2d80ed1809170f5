package ast

import "github.com/vela-lang/vela/internal/token"

// DeclStat is a `local`/`global` declaration statement (spec §6/§4.7
// `Decl(decls, exps)`). Decls and Exps are matched up positionally, with
// the RHS list length-expanded first where it ends in a call expression
// (spec §4.5 rule 3).
type DeclStat struct {
	Token token.Position
	Decls []*Decl
	Exps  []Exp
}

func (n *DeclStat) Pos() token.Position { return n.Token }
func (*DeclStat) statNode()             {}

type Block struct {
	Token token.Position
	Stats []Stat
}

func (n *Block) Pos() token.Position { return n.Token }
func (*Block) statNode()             {}

type While struct {
	Token token.Position
	Cond  Exp
	Body  *Block
}

func (n *While) Pos() token.Position { return n.Token }
func (*While) statNode()             {}

// Repeat's condition shares the body block's scope (spec §4.7): Body's
// statements and Cond are checked under one pushed scope.
type Repeat struct {
	Token token.Position
	Body  *Block
	Cond  Exp
}

func (n *Repeat) Pos() token.Position { return n.Token }
func (*Repeat) statNode()             {}

// ForNum is a numeric for-loop. Step is nil until the checker's §4.5
// rule 4 defaulting pass fills it in; it is never nil on a decorated
// tree (spec §3 invariant, §8 property 5).
type ForNum struct {
	Token token.Position
	Decl  *Decl
	Start Exp
	Limit Exp
	Step  Exp
	Body  *Block
}

func (n *ForNum) Pos() token.Position { return n.Token }
func (*ForNum) statNode()             {}

// ForIn is a generic for-loop (iterator, state, control protocol).
type ForIn struct {
	Token token.Position
	Decls []*Decl
	Exps  []Exp
	Body  *Block
}

func (n *ForIn) Pos() token.Position { return n.Token }
func (*ForIn) statNode()             {}

type Assign struct {
	Token token.Position
	Vars  []Var
	Exps  []Exp
}

func (n *Assign) Pos() token.Position { return n.Token }
func (*Assign) statNode()             {}

type CallStat struct {
	Token token.Position
	Call  Exp
}

func (n *CallStat) Pos() token.Position { return n.Token }
func (*CallStat) statNode()             {}

type Return struct {
	Token token.Position
	Exps  []Exp
}

func (n *Return) Pos() token.Position { return n.Token }
func (*Return) statNode()             {}

// If's Else is nil (no else branch), a *Block (plain else), or another
// *If (an "elseif" chain modeled as nested ifs, matching how a
// recursive-descent parser for this grammar would naturally build it).
type If struct {
	Token token.Position
	Cond  Exp
	Then  *Block
	Else  Stat
}

func (n *If) Pos() token.Position { return n.Token }
func (*If) statNode()             {}

type Break struct {
	Token token.Position
}

func (n *Break) Pos() token.Position { return n.Token }
func (*Break) statNode()             {}

// FuncStat is a (possibly qualified, possibly nested/local) function
// declaration (spec §6/§4.7 `Func(name, decl, value)`). NameVar is the
// Var being bound — a VarName for a plain function, a VarDot for
// `modname.f(...)`; the latter is flattened into a VarName the same way
// Assign's module-field case is (spec §4.7).
type FuncStat struct {
	Token   token.Position
	NameVar Var
	Decl    *Decl // carries the declared Function syntax type
	Value   *Lambda
}

func (n *FuncStat) Pos() token.Position { return n.Token }
func (*FuncStat) statNode()             {}
