// Package token defines the source-location type shared by every AST node
// and every diagnostic produced by the semantic analysis pass.
//
// Vela's lexer and parser are external collaborators (see spec §1/§6): this
// package holds only the piece of their output the checker actually
// consumes, a source position, grounded on the shape funxy's own
// internal/token.Token carries (Line, Column) plus a File field for
// multi-file diagnostic batches.
package token

import "fmt"

// Position identifies a single point in a source file.
type Position struct {
	File   string
	Line   int
	Column int
}

// String renders "<file>:<line>:<column>", or just "<line>:<column>" when
// File is empty (single-file CLI invocations routinely omit it).
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsZero reports whether the position was never set.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0 && p.File == ""
}
