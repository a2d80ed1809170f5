package fixtures

import "github.com/vela-lang/vela/internal/ast"

// Registry names every canned program cmd/velac's `check` subcommand and
// internal/checker's tests can run (scenarios drawn from spec §8's
// testable properties, plus SPEC_FULL §5's supplemented scenarios).
var Registry = map[string]func() *ast.Program{
	"ok-minimal":               okMinimal,
	"ok-record-and-array":      okRecordAndArray,
	"ok-fornum-step-default":   okForNumStepDefault,
	"ok-repeat-scope-sharing":  okRepeatScopeSharing,
	"err-repeat-forward-ref":   errRepeatForwardRef,
	"ok-mutual-recursion":      okMutualRecursion,
	"ok-qualified-function":    okQualifiedFunction,
	"err-unknown-name":         errUnknownName,
	"err-type-mismatch":        errTypeMismatch,
	"err-arity-mismatch":       errArityMismatch,
	"err-missing-field":        errMissingField,
	"err-duplicate-field":      errDuplicateField,
	"err-mixed-compare":        errMixedCompare,
	"err-no-such-field-named":  errNoSuchFieldNamed,
	"err-self-referential-rec": errSelfReferentialRecord,
	"err-import-rejected":      errImportRejected,
	"err-table-insert":         errTableInsertRejected,
	"err-bare-module":          errBareModuleReference,
	"err-duplicate-main-mod":   errDuplicateMainModule,
	"err-return-arity":         errReturnArity,
	"err-forin-arity":          errForInArity,
	"ok-mixed-arith-coerces":   okMixedArithCoerces,
	"err-abort-on-first":       errAbortOnFirst,
	"ok-main-module-initlist":  okMainModuleInitlist,
	"err-duplicate-mod-field":  errDuplicateModuleField,
}

// ok-minimal: the smallest legal program — a main module with no fields.
func okMinimal() *ast.Program {
	return Program("ok-minimal",
		MainModule("M"),
	)
}

// ok-record-and-array: a record type, a record-typed global initialized
// from a record literal, and an array-typed global — exercises C6/C7's
// Initlist verify rules against both Array and Record.
func okRecordAndArray() *ast.Program {
	point := Record("Point",
		RField("x", TName("integer")),
		RField("y", TName("integer")),
	)
	origin := TLVarDecl(D("origin", TName("Point")),
		Initlist(RecField("x", Int(0)), RecField("y", Int(0))),
	)
	nums := TLVarDecl(D("nums", TArray(TName("integer"))),
		Initlist(ListField(Int(1)), ListField(Int(2)), ListField(Int(3))),
	)
	return Program("ok-record-and-array",
		MainModule("M"),
		point,
		origin,
		nums,
	)
}

// ok-fornum-step-default: a numeric for-loop with no step expression;
// the checker must default it to integer literal 1 (spec §4.5 rule 4).
func okForNumStepDefault() *ast.Program {
	loopVar := D("i", TName("integer"))
	body := Block(CallStat(Call(Name("print"), Name("i"))))
	forStat := ForNumStat(loopVar, Int(1), Int(10), nil, body)
	return Program("ok-fornum-step-default",
		MainModule("M"),
		TLStatOf(forStat),
	)
}

// ok-repeat-scope-sharing: a local declared in a repeat-loop's body must
// be visible in its until condition (spec §4.7) — SPEC_FULL §5.4.
func okRepeatScopeSharing() *ast.Program {
	body := Block(
		DeclStat([]*ast.Decl{D("done", TName("boolean"))}, Bool(true)),
	)
	repeatStat := RepeatStat(body, Name("done"))
	return Program("ok-repeat-scope-sharing",
		MainModule("M"),
		TLStatOf(repeatStat),
	)
}

// err-repeat-forward-ref: a repeat-loop body referencing a local before
// its declaration — SPEC_FULL §5.4's mirror-image regression to
// ok-repeat-scope-sharing: the shared scope makes later body
// declarations visible to the until condition, but it does not make
// textual order inside the body stop mattering.
func errRepeatForwardRef() *ast.Program {
	body := Block(
		DeclStat([]*ast.Decl{D("a", TName("integer"))}, Name("b")),
		DeclStat([]*ast.Decl{D("b", TName("integer"))}, Int(1)),
	)
	repeatStat := RepeatStat(body, Bool(true))
	return Program("err-repeat-forward-ref",
		MainModule("M"),
		TLStatOf(repeatStat),
	)
}

// ok-mutual-recursion: two top-level functions in the same letrec group
// call each other — both signatures must be registered before either
// body is checked (spec §4.8 step 3).
func okMutualRecursion() *ast.Program {
	isEvenBody := Block(
		IfStat(Bin(ast.OpEq, Name("n"), Int(0)),
			Block(ReturnStat(Bool(true))),
			Block(ReturnStat(Call(Name("isOdd"), Bin(ast.OpSub, Name("n"), Int(1))))),
		),
	)
	isOddBody := Block(
		IfStat(Bin(ast.OpEq, Name("n"), Int(0)),
			Block(ReturnStat(Bool(false))),
			Block(ReturnStat(Call(Name("isEven"), Bin(ast.OpSub, Name("n"), Int(1))))),
		),
	)
	isEven := PlainFunc("isEven", []*ast.Decl{D("n", TName("integer"))}, []ast.SyntaxType{TName("boolean")}, isEvenBody)
	isOdd := PlainFunc("isOdd", []*ast.Decl{D("n", TName("integer"))}, []ast.SyntaxType{TName("boolean")}, isOddBody)
	return Program("ok-mutual-recursion",
		MainModule("M"),
		isEven,
		isOdd,
	)
}

// ok-qualified-function: `function M.greet()` declares a field of the
// program's own main module, reachable afterward as `M.greet` only (no
// bare `greet` binding is made) (spec §4.5 rule 1).
func okQualifiedFunction() *ast.Program {
	body := Block(ReturnStat(Str("hi")))
	greet := QualifiedFunc("M", "greet", nil, []ast.SyntaxType{TName("string")}, body)
	useIt := TLStatOf(CallStat(Call(Dot(Name("M"), "greet"))))
	return Program("ok-qualified-function",
		MainModule("M"),
		greet,
		useIt,
	)
}

// err-unknown-name: a reference to an undeclared identifier.
func errUnknownName() *ast.Program {
	return Program("err-unknown-name",
		MainModule("M"),
		TLStatOf(CallStat(Call(Name("print"), Name("nope")))),
	)
}

// err-type-mismatch: a string value declared against an integer
// annotation.
func errTypeMismatch() *ast.Program {
	return Program("err-type-mismatch",
		MainModule("M"),
		TLVarDecl(D("n", TName("integer")), Str("not a number")),
	)
}

// err-arity-mismatch: calling a one-argument built-in with no arguments.
func errArityMismatch() *ast.Program {
	return Program("err-arity-mismatch",
		MainModule("M"),
		TLStatOf(CallStat(Call(Name("tointeger")))),
	)
}

// err-missing-field: a Point initializer omitting field `y`.
func errMissingField() *ast.Program {
	point := Record("Point", RField("x", TName("integer")), RField("y", TName("integer")))
	bad := TLVarDecl(D("p", TName("Point")), Initlist(RecField("x", Int(1))))
	return Program("err-missing-field",
		MainModule("M"),
		point,
		bad,
	)
}

// err-duplicate-field: a Point initializer naming `x` twice.
func errDuplicateField() *ast.Program {
	point := Record("Point", RField("x", TName("integer")), RField("y", TName("integer")))
	bad := TLVarDecl(D("p", TName("Point")),
		Initlist(RecField("x", Int(1)), RecField("x", Int(2)), RecField("y", Int(2))),
	)
	return Program("err-duplicate-field",
		MainModule("M"),
		point,
		bad,
	)
}

// err-mixed-compare: comparing an integer with a float (spec §4.5 rule
// 5's "not yet implemented" carve-out).
func errMixedCompare() *ast.Program {
	return Program("err-mixed-compare",
		MainModule("M"),
		TLVarDecl(D("b", TName("boolean")), Bin(ast.OpLt, Int(1), Float(1.5))),
	)
}

// err-no-such-field-named: SPEC_FULL §5.1's record-aware field-error
// message — the diagnostic must name the record, not just the field.
func errNoSuchFieldNamed() *ast.Program {
	point := Record("Point", RField("x", TName("integer")), RField("y", TName("integer")))
	bad := TLVarDecl(D("p", TName("Point")), Initlist(RecField("x", Int(1)), RecField("y", Int(2))))
	access := TLStatOf(CallStat(Call(Name("print"), Dot(Name("p"), "z"))))
	return Program("err-no-such-field-named",
		MainModule("M"),
		point,
		bad,
		access,
	)
}

// err-self-referential-rec: a record whose own field names itself
// (spec §9 "self-referential records are rejected").
func errSelfReferentialRecord() *ast.Program {
	node := Record("Node", RField("next", TName("Node")))
	return Program("err-self-referential-rec",
		MainModule("M"),
		node,
	)
}

// err-import-rejected: a bare import, recognized but always rejected
// (SPEC_FULL §5.2).
func errImportRejected() *ast.Program {
	return Program("err-import-rejected",
		MainModule("M"),
		Import("other/module"),
	)
}

// err-table-insert: table.insert is cataloged but unimplemented
// (SPEC_FULL §5.2).
func errTableInsertRejected() *ast.Program {
	return Program("err-table-insert",
		MainModule("M"),
		TLVarDecl(D("xs", TArray(TName("integer"))), Initlist()),
		TLStatOf(CallStat(Call(Dot(Name("table"), "insert"), Name("xs"), Int(1)))),
	)
}

// err-bare-module: referencing a built-in module name without dot
// notation.
func errBareModuleReference() *ast.Program {
	return Program("err-bare-module",
		MainModule("M"),
		TLStatOf(CallStat(Call(Name("print"), Name("math")))),
	)
}

// err-duplicate-main-mod: two `: Module` declarations in one program.
func errDuplicateMainModule() *ast.Program {
	return Program("err-duplicate-main-mod",
		MainModule("M"),
		MainModule("N"),
	)
}

// err-return-arity: a function declared with one return value whose
// body returns none.
func errReturnArity() *ast.Program {
	body := Block(ReturnStat())
	fn := PlainFunc("f", nil, []ast.SyntaxType{TName("integer")}, body)
	return Program("err-return-arity",
		MainModule("M"),
		fn,
	)
}

// err-forin-arity: a for-in loop declaring more names than its iterator
// function returns.
func errForInArity() *ast.Program {
	iterBody := Block(ReturnStat(Int(1)))
	iterParams := []*ast.Decl{D("state", TName("any")), D("ctrl", TName("any"))}
	iter := PlainFunc("nextVal", iterParams, []ast.SyntaxType{TName("integer")}, iterBody)
	loop := ForInStat(
		[]*ast.Decl{D("a", TName("integer")), D("b", TName("integer"))},
		[]ast.Exp{Name("nextVal"), Nil(), Nil()},
		Block(),
	)
	return Program("err-forin-arity",
		MainModule("M"),
		iter,
		TLStatOf(loop),
	)
}

// ok-mixed-arith-coerces: adding an integer to a float must succeed by
// implicitly promoting the integer operand (spec §4.5 rule 5).
func okMixedArithCoerces() *ast.Program {
	sum := TLVarDecl(D("total", TName("float")), Bin(ast.OpAdd, Int(1), Float(2.5)))
	return Program("ok-mixed-arith-coerces",
		MainModule("M"),
		sum,
	)
}

// err-abort-on-first: a program with two independent errors — an
// unknown name followed by a type mismatch. Only the first (spec §4.2's
// abort-on-first-error contract) should ever surface; Run must never
// report the second.
func errAbortOnFirst() *ast.Program {
	return Program("err-abort-on-first",
		MainModule("M"),
		TLStatOf(CallStat(Call(Name("print"), Name("nope")))),
		TLVarDecl(D("n", TName("integer")), Str("also wrong")),
	)
}

// ok-main-module-initlist: spec §8 scenario S1 — a main module declared
// with an empty `{}` initializer, immediately returned.
func okMainModuleInitlist() *ast.Program {
	return Program("ok-main-module-initlist",
		TLVarDecl(D("m", TModule()), Initlist()),
		TLStatOf(ReturnStat(Name("m"))),
	)
}

// err-duplicate-mod-field: two top-level declarations both naming field
// "x" on the main module — the second must be rejected rather than
// silently rebinding the first (spec §4.1).
func errDuplicateModuleField() *ast.Program {
	return Program("err-duplicate-mod-field",
		MainModule("M"),
		TLVarDecl(D("x", TName("integer")), Int(1)),
		TLVarDecl(D("x", TName("integer")), Int(2)),
	)
}
