// Package ast defines the AST node model the semantic analysis pass
// consumes and decorates (spec §3/§6, component C2). spec.md treats the
// parser and the AST model as external collaborators; Vela still needs a
// concrete tree shape to check against, styled on funxy's own
// internal/ast (a Node/Statement/Expression interface family, one struct
// per syntactic form, a Pos()-style accessor for diagnostics) but cut down
// to exactly the node set spec.md names plus the two synthesized node
// kinds (ExtraRet, ToFloat) the checker itself introduces.
package ast

import (
	"github.com/vela-lang/vela/internal/token"
	"github.com/vela-lang/vela/internal/types"
)

// Node is the base interface every AST node implements.
type Node interface {
	Pos() token.Position
}

// TopLevel is a top-level program item.
type TopLevel interface {
	Node
	topLevelNode()
}

// Stat is a statement.
type Stat interface {
	Node
	statNode()
}

// Exp is an expression.
type Exp interface {
	Node
	expNode()
	// SetType/GetType back the _type annotation spec §3 requires on
	// every expression node.
	SetType(types.Type)
	GetType() types.Type
}

// Var is an lvalue/name-reference form.
type Var interface {
	Node
	varNode()
	SetType(types.Type)
	GetType() types.Type
}

// SyntaxType is a syntactic (unresolved) type annotation, as written by
// the programmer, distinct from the semantic types.Type the resolver
// produces from it (spec §4.3).
type SyntaxType interface {
	Node
	syntaxTypeNode()
}

// Binding is implemented by internal/symbols.Binding; declared here (not
// imported) to avoid an import cycle between ast and symbols, since a Var
// node's _name annotation must hold a symbols.Binding and symbols.Symbol
// must hold an ast.Node (its DefinitionNode).
type Binding interface {
	BindingKind() string
}

// exprBase/varBase factor out the _type annotation slot (spec §3) shared
// by every Exp and Var node.
type exprBase struct {
	Type types.Type
}

func (e *exprBase) SetType(t types.Type)  { e.Type = t }
func (e *exprBase) GetType() types.Type   { return e.Type }
func (e *exprBase) expNode()              {}

type varBase struct {
	Type types.Type
	Name Binding
}

func (v *varBase) SetType(t types.Type) { v.Type = t }
func (v *varBase) GetType() types.Type  { return v.Type }
func (v *varBase) varNode()             {}
