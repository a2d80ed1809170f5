package builtins_test

import (
	"os"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/vela-lang/vela/internal/builtins"
	"github.com/vela-lang/vela/internal/types"
)

// loadArchive reads the shared catalog fixture bundle and returns its
// files indexed by name.
func loadArchive(t *testing.T) map[string][]byte {
	t.Helper()
	data, err := os.ReadFile("../../tests/testdata/catalogs.txtar")
	if err != nil {
		t.Fatalf("reading catalogs.txtar: %v", err)
	}
	ar := txtar.Parse(data)
	files := make(map[string][]byte, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = f.Data
	}
	return files
}

func TestParseMinimalCatalog(t *testing.T) {
	files := loadArchive(t)
	cat, err := builtins.Parse(files["minimal.yaml"])
	if err != nil {
		t.Fatalf("parsing minimal.yaml: %v", err)
	}
	fn, ok := cat.Functions["id"]
	if !ok {
		t.Fatalf("expected function %q in catalog", "id")
	}
	if len(fn.Args) != 1 || fn.Args[0] != (types.Any{}) {
		t.Errorf("id: expected one Any arg, got %v", fn.Args)
	}
	if len(fn.Rets) != 1 || fn.Rets[0] != (types.Any{}) {
		t.Errorf("id: expected one Any ret, got %v", fn.Rets)
	}
}

func TestParseCatalogWithModule(t *testing.T) {
	files := loadArchive(t)
	cat, err := builtins.Parse(files["with-module.yaml"])
	if err != nil {
		t.Fatalf("parsing with-module.yaml: %v", err)
	}
	if !cat.Modules["strings"] {
		t.Errorf("expected module %q registered", "strings")
	}
	if !cat.Modules["empty"] {
		t.Errorf("expected module %q registered even with no functions", "empty")
	}
	upper, ok := cat.Qualified["strings.upper"]
	if !ok {
		t.Fatalf("expected qualified function %q", "strings.upper")
	}
	if len(upper.Args) != 1 || upper.Args[0] != (types.String{}) {
		t.Errorf("strings.upper: expected one String arg, got %v", upper.Args)
	}
	if len(upper.Rets) != 1 || upper.Rets[0] != (types.String{}) {
		t.Errorf("strings.upper: expected one String ret, got %v", upper.Rets)
	}
}

func TestParseCatalogUnknownPrimitiveFails(t *testing.T) {
	files := loadArchive(t)
	if _, err := builtins.Parse(files["unknown-primitive.yaml"]); err == nil {
		t.Fatal("expected an error for an unknown primitive type name")
	}
}

// TestDefaultCatalogLoads exercises the embedded catalog.yaml loaded via
// go:embed (component C3's actual production data, not a fixture).
func TestDefaultCatalogLoads(t *testing.T) {
	cat, err := builtins.Default()
	if err != nil {
		t.Fatalf("loading default catalog: %v", err)
	}
	for _, name := range []string{"print", "tostring", "tointeger", "require", "assert", "error"} {
		if _, ok := cat.Functions[name]; !ok {
			t.Errorf("expected default catalog to register function %q", name)
		}
	}
	for _, mod := range []string{"io", "math", "table", "string"} {
		if !cat.Modules[mod] {
			t.Errorf("expected default catalog to register module %q", mod)
		}
	}
	if _, ok := cat.Qualified["math.floor"]; !ok {
		t.Error("expected qualified function math.floor in default catalog")
	}
}
