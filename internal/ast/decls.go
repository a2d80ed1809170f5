package ast

import (
	"github.com/vela-lang/vela/internal/token"
	"github.com/vela-lang/vela/internal/types"
)

// Decl is a single name/optional-type-annotation pair introduced by a
// `local`/`global` declaration, a function parameter, or a for-loop
// control variable (spec §6 `Decl{name, type?}`).
type Decl struct {
	Token   token.Position
	Name    string
	// TypeAnn is the syntactic annotation as written, nil when absent.
	TypeAnn SyntaxType
	// Type is the resolved semantic type (spec §3 `_type`), set by
	// check_initializer_exp (spec §4.7) or by parameter binding.
	Type types.Type
	// ModName is set when this declaration is being introduced as a
	// field of the main module (spec §3 `_modname`).
	ModName string
}

func (d *Decl) Pos() token.Position { return d.Token }
