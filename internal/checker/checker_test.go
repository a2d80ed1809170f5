package checker_test

import (
	"strings"
	"testing"

	"github.com/vela-lang/vela/internal/builtins"
	"github.com/vela-lang/vela/internal/checker"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/fixtures"
)

// runFixture runs component C9 against a named fixture program, using
// the default built-in catalog.
func runFixture(t *testing.T, name string) *diagnostics.Error {
	t.Helper()
	build, ok := fixtures.Registry[name]
	if !ok {
		t.Fatalf("no such fixture %q", name)
	}
	catalog, err := builtins.Default()
	if err != nil {
		t.Fatalf("loading default catalog: %v", err)
	}
	_, diag := checker.Run(build(), catalog)
	return diag
}

func expectOK(t *testing.T, name string) {
	t.Helper()
	if diag := runFixture(t, name); diag != nil {
		t.Fatalf("fixture %q: expected no diagnostic, got %s", name, diag.Error())
	}
}

func expectError(t *testing.T, name string, code diagnostics.Code) {
	t.Helper()
	diag := runFixture(t, name)
	if diag == nil {
		t.Fatalf("fixture %q: expected error %s, got none", name, code)
	}
	if diag.Code != code {
		t.Fatalf("fixture %q: expected error %s, got %s (%s)", name, code, diag.Code, diag.Message)
	}
}

func expectErrorContains(t *testing.T, name string, code diagnostics.Code, substr string) {
	t.Helper()
	diag := runFixture(t, name)
	if diag == nil {
		t.Fatalf("fixture %q: expected error %s, got none", name, code)
	}
	if diag.Code != code {
		t.Fatalf("fixture %q: expected error %s, got %s (%s)", name, code, diag.Code, diag.Message)
	}
	if !strings.Contains(diag.Message, substr) {
		t.Errorf("fixture %q: expected message to contain %q, got %q", name, substr, diag.Message)
	}
}

func TestOKPrograms(t *testing.T) {
	for _, name := range []string{
		"ok-minimal",
		"ok-record-and-array",
		"ok-fornum-step-default",
		"ok-repeat-scope-sharing",
		"ok-mutual-recursion",
		"ok-qualified-function",
	} {
		t.Run(name, func(t *testing.T) { expectOK(t, name) })
	}
}

func TestUnknownName(t *testing.T) {
	expectError(t, "err-unknown-name", diagnostics.CodeUnknownName)
}

func TestTypeMismatch(t *testing.T) {
	expectError(t, "err-type-mismatch", diagnostics.CodeMismatch)
}

func TestArityMismatch(t *testing.T) {
	expectError(t, "err-arity-mismatch", diagnostics.CodeArityMismatch)
}

func TestMissingField(t *testing.T) {
	expectError(t, "err-missing-field", diagnostics.CodeMissingField)
}

func TestDuplicateField(t *testing.T) {
	expectError(t, "err-duplicate-field", diagnostics.CodeDuplicateField)
}

func TestMixedCompare(t *testing.T) {
	expectError(t, "err-mixed-compare", diagnostics.CodeMixedCompare)
}

// TestNoSuchFieldNamesRecord covers SPEC_FULL §5.1: the diagnostic for a
// missing field must name the indexed type, not just the field name.
func TestNoSuchFieldNamesRecord(t *testing.T) {
	expectErrorContains(t, "err-no-such-field-named", diagnostics.CodeNoSuchField, "Point")
}

func TestSelfReferentialRecordRejected(t *testing.T) {
	expectErrorContains(t, "err-self-referential-rec", diagnostics.CodeUnknownType, "Node")
}

func TestImportRejected(t *testing.T) {
	expectError(t, "err-import-rejected", diagnostics.CodeNotImplemented)
}

func TestTableInsertRejected(t *testing.T) {
	expectErrorContains(t, "err-table-insert", diagnostics.CodeNotImplemented, "table")
}

func TestBareModuleReference(t *testing.T) {
	expectError(t, "err-bare-module", diagnostics.CodeBareModule)
}

func TestDuplicateMainModule(t *testing.T) {
	expectError(t, "err-duplicate-main-mod", diagnostics.CodeDuplicateMainMod)
}

func TestReturnArityMismatch(t *testing.T) {
	expectError(t, "err-return-arity", diagnostics.CodeArityMismatch)
}

func TestForInArityMismatch(t *testing.T) {
	expectError(t, "err-forin-arity", diagnostics.CodeArityMismatch)
}

func TestMixedArithCoerces(t *testing.T) {
	expectOK(t, "ok-mixed-arith-coerces")
}

// TestMainModuleInitlist covers spec §8 scenario S1: `local m: module =
// {}` then `return m` must succeed.
func TestMainModuleInitlist(t *testing.T) {
	expectOK(t, "ok-main-module-initlist")
}

func TestDuplicateModuleField(t *testing.T) {
	expectError(t, "err-duplicate-mod-field", diagnostics.CodeDuplicateField)
}

// TestRepeatForwardRefRejected covers SPEC_FULL §5.4's mirror-image
// regression to TestOKPrograms's "ok-repeat-scope-sharing": the shared
// scope makes a body-declared local visible to the until condition, but
// textual order among the body's own statements still matters.
func TestRepeatForwardRefRejected(t *testing.T) {
	expectError(t, "err-repeat-forward-ref", diagnostics.CodeUnknownName)
}

// TestAbortOnFirstError covers spec §4.2's cooperative abort channel:
// the second, independent error in the fixture must never surface.
func TestAbortOnFirstError(t *testing.T) {
	expectErrorContains(t, "err-abort-on-first", diagnostics.CodeUnknownName, "nope")
}
