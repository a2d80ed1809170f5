// Package types implements the semantic type algebra (spec §3, component
// C1). spec.md treats this as an external collaborator the checker merely
// consumes; Vela still has to define the closed variant set somewhere, so
// this package plays that role directly, kept deliberately small (no type
// variables, no kinds, no unification) next to funxy's own
// internal/typesystem, which solves a much richer Hindley-Milner problem
// with traits and higher-kinded types that this pass's data model has no
// use for. The shape — a Type interface plus one struct per variant, each
// with a String() method — is still funxy's.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the interface every semantic type implements.
type Type interface {
	String() string
	isType()
}

// Nil is the type of the nil literal.
type Nil struct{}

func (Nil) String() string { return "nil" }
func (Nil) isType()        {}

// Boolean is the type of true/false.
type Boolean struct{}

func (Boolean) String() string { return "boolean" }
func (Boolean) isType()        {}

// Integer is the integer numeric type.
type Integer struct{}

func (Integer) String() string { return "integer" }
func (Integer) isType()        {}

// Float is the floating-point numeric type.
type Float struct{}

func (Float) String() string { return "float" }
func (Float) isType()        {}

// String is the string type.
type String struct{}

func (String) String() string { return "string" }
func (String) isType()        {}

// Any is the dynamic escape-hatch type: consistent with everything.
type Any struct{}

func (Any) String() string { return "any" }
func (Any) isType()        {}

// Void is the "no value" return type of a function declared with no
// return types.
type Void struct{}

func (Void) String() string { return "void" }
func (Void) isType()        {}

// Array is a homogeneous array type.
type Array struct {
	Elem Type
}

func (a Array) String() string { return "{" + a.Elem.String() + "}" }
func (Array) isType()          {}

// Table is a structural map-like type: a fixed set of named fields, all
// of which must be present in a matching initializer (spec §4.4 verify
// rules for Initlist).
type Table struct {
	Fields map[string]Type
}

func (t Table) String() string {
	names := make([]string, 0, len(t.Fields))
	for n := range t.Fields {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s: %s", n, t.Fields[n].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (Table) isType() {}

// Record is a named, field-ordered nominal type (as produced by a
// top-level `record` declaration). Field order is preserved for
// initializer diagnostics and for any future code-generation consumer
// that needs stable layout.
type Record struct {
	Name        string
	FieldOrder  []string
	FieldTypes  map[string]Type
}

func (r Record) String() string { return r.Name }
func (Record) isType()          {}

// Function is the type of a (possibly multi-argument, multi-return)
// function value.
type Function struct {
	Args []Type
	Rets []Type
}

func (f Function) String() string {
	argParts := make([]string, len(f.Args))
	for i, a := range f.Args {
		argParts[i] = a.String()
	}
	retParts := make([]string, len(f.Rets))
	for i, r := range f.Rets {
		retParts[i] = r.String()
	}
	sig := "(" + strings.Join(argParts, ", ") + ")"
	switch len(retParts) {
	case 0:
		return sig + ": ()"
	case 1:
		return sig + ": " + retParts[0]
	default:
		return sig + ": (" + strings.Join(retParts, ", ") + ")"
	}
}
func (Function) isType() {}

// Module is the type of the single value a program constructs and
// returns (spec §3, "main module"), and of any built-in module accessed
// only through qualified `Var.Dot` flattening.
type Module struct{}

func (Module) String() string { return "module" }
func (Module) isType()        {}
