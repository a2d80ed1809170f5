package types

// Equals reports whether two semantic types are identical. Array element
// types, table/record field sets, and function signatures are compared
// structurally; Record identity is nominal (by name), matching spec §3's
// closed variant set.
func Equals(a, b Type) bool {
	switch at := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		_, ok := b.(Boolean)
		return ok
	case Integer:
		_, ok := b.(Integer)
		return ok
	case Float:
		_, ok := b.(Float)
		return ok
	case String:
		_, ok := b.(String)
		return ok
	case Any:
		_, ok := b.(Any)
		return ok
	case Void:
		_, ok := b.(Void)
		return ok
	case Module:
		_, ok := b.(Module)
		return ok
	case Array:
		bt, ok := b.(Array)
		return ok && Equals(at.Elem, bt.Elem)
	case Table:
		bt, ok := b.(Table)
		if !ok || len(at.Fields) != len(bt.Fields) {
			return false
		}
		for name, ft := range at.Fields {
			other, ok := bt.Fields[name]
			if !ok || !Equals(ft, other) {
				return false
			}
		}
		return true
	case Record:
		bt, ok := b.(Record)
		return ok && at.Name == bt.Name
	case Function:
		bt, ok := b.(Function)
		if !ok || len(at.Args) != len(bt.Args) || len(at.Rets) != len(bt.Rets) {
			return false
		}
		for i := range at.Args {
			if !Equals(at.Args[i], bt.Args[i]) {
				return false
			}
		}
		for i := range at.Rets {
			if !Equals(at.Rets[i], bt.Rets[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Consistent is true when either type is Any or the two types are equal
// (spec §3/§4.4). This drives implicit Cast insertion in verify.
func Consistent(a, b Type) bool {
	if _, ok := a.(Any); ok {
		return true
	}
	if _, ok := b.(Any); ok {
		return true
	}
	return Equals(a, b)
}

// IsNumeric reports whether t is Integer or Float.
func IsNumeric(t Type) bool {
	switch t.(type) {
	case Integer, Float:
		return true
	default:
		return false
	}
}

// IsCondition reports whether t is acceptable in a Boolean context
// (Boolean or Any — spec §4.4 "condition-typed").
func IsCondition(t Type) bool {
	switch t.(type) {
	case Boolean, Any:
		return true
	default:
		return false
	}
}

// IsIndexable reports whether t supports field/index lookup: Table,
// Record, or Module (spec §3).
func IsIndexable(t Type) bool {
	switch t.(type) {
	case Table, Record, Module:
		return true
	default:
		return false
	}
}

// Indices returns the field-name-to-type map for an indexable type.
// Module returns an empty map here deliberately: module field lookup is
// resolved through the symbol table's qualified-name flattening (spec
// §4.5 rule 1), never through this structural map, since a module's
// fields are separate top-level bindings, not a record/table literal.
func Indices(t Type) map[string]Type {
	switch tt := t.(type) {
	case Table:
		return tt.Fields
	case Record:
		return tt.FieldTypes
	default:
		return map[string]Type{}
	}
}

// ToString renders a type for inclusion in a diagnostic message.
func ToString(t Type) string {
	if t == nil {
		return "<untyped>"
	}
	return t.String()
}
