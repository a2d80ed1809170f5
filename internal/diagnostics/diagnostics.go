// Package diagnostics implements the checker's cooperative abort-on-first-
// error channel (spec §4.2, §7, component C5).
//
// Grounded on mcgru-funxy's internal/diagnostics.DiagnosticError: a typed
// error code, a printf-style template, and a source token/position. Vela
// narrows the category set to exactly the two spec §7 recognizes (scope
// error, type error) and formats the fixed template
// "<location>: <category>: <body>" rather than funxy's richer
// "[phase] error at L:C [CODE]: msg" shape, since the pass has no lexer or
// parser phase of its own to distinguish.
package diagnostics

import "fmt"

import "github.com/vela-lang/vela/internal/token"

// Category is the user-visible diagnostic class. The pass never exposes
// any further subdivision (spec §7).
type Category string

const (
	CategoryScope Category = "scope error"
	CategoryType  Category = "type error"
)

// Code identifies the specific rule that fired, for tooling that wants to
// filter or group diagnostics without string-matching messages.
type Code string

const (
	CodeUnknownName        Code = "E-SCOPE-001" // unknown identifier
	CodeNotAValue          Code = "E-SCOPE-002" // type name used as a value
	CodeBareModule         Code = "E-SCOPE-003" // module name referenced without dot notation
	CodeUnknownQualified   Code = "E-SCOPE-004" // unknown member of a built-in module
	CodeUnknownType        Code = "E-TYPE-001"  // unknown type name
	CodeDuplicateField     Code = "E-TYPE-002"  // duplicate field in a table/record type
	CodeMismatch           Code = "E-TYPE-003"  // found type is not consistent with expected
	CodeNeedsHint          Code = "E-TYPE-004"  // Initlist/Lambda synthesized with no context
	CodeNotIndexable       Code = "E-TYPE-005"  // dot/bracket access on a non-indexable type
	CodeNoSuchField        Code = "E-TYPE-006"  // field absent from a Table/Record
	CodeMissingField       Code = "E-TYPE-007"  // required field absent from an initializer
	CodeArityMismatch      Code = "E-TYPE-008"  // call/return/for-in arity mismatch
	CodeMixedCompare       Code = "E-TYPE-009"  // float/integer comparison, not yet implemented
	CodeBadUnary           Code = "E-TYPE-010"  // unary operator applied to the wrong type
	CodeBadBinary          Code = "E-TYPE-011"  // binary operator applied to the wrong types
	CodeNotCondition       Code = "E-TYPE-012"  // condition position requires Boolean/Any
	CodeAssignToFunction   Code = "E-TYPE-013"  // assignment target resolves to a function/builtin
	CodeDuplicateMainMod   Code = "E-TYPE-014"  // more than one main-module declaration
	CodeMissingReturn      Code = "E-TYPE-015"  // a top-level return that is not the program's last item (a program with no final return is not reported)
	CodeMethodNotSupported Code = "E-TYPE-016"  // CallMethod is reserved
	CodeNotImplemented     Code = "E-TYPE-017"  // recognized-but-unimplemented surface (imports, table.*)
)

// Error is a single user-visible diagnostic: a source position, a
// category, and a message body. It implements the standard error
// interface so it can travel through normal Go control flow.
type Error struct {
	Pos      token.Position
	Category Category
	Code     Code
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Category, e.Message)
}

// NewScopeError builds a scope-error diagnostic.
func NewScopeError(pos token.Position, code Code, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Category: CategoryScope, Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewTypeError builds a type-error diagnostic.
func NewTypeError(pos token.Position, code Code, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Category: CategoryType, Code: code, Message: fmt.Sprintf(format, args...)}
}
