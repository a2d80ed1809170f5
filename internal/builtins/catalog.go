// Package builtins is the built-in catalog (spec §3/§6, component C3):
// two read-only dictionaries, function names to Function types and
// module names, that the checker treats as opaque data it never
// invents. SPEC_FULL §4 concretizes the catalog's contents; this file
// loads them from catalog.yaml with gopkg.in/yaml.v3, grounded on
// funxy's own internal/evaluator/builtins_yaml.go and
// internal/ext/config.go (both load YAML payloads directly with yaml.v3).
package builtins

import (
	_ "embed"
	"fmt"

	"github.com/vela-lang/vela/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

type rawFunc struct {
	Args []string `yaml:"args"`
	Rets []string `yaml:"rets"`
}

type rawModule struct {
	Functions map[string]rawFunc `yaml:"functions"`
}

type rawCatalog struct {
	Functions map[string]rawFunc   `yaml:"functions"`
	Modules   map[string]rawModule `yaml:"modules"`
}

// Catalog holds the two dictionaries spec §6 names: bare function names
// (the global prelude) and, per module, its qualified function names
// (already combined as "mod.field", matching the shape qualified-name
// flattening looks them up by — spec §4.5 rule 1).
type Catalog struct {
	Functions map[string]types.Function
	// Qualified holds "modname.field" -> Function for every built-in
	// module's members.
	Qualified map[string]types.Function
	// Modules is the set of built-in module names (non-main ModuleBind
	// candidates, spec §3/§4.8 step 2).
	Modules map[string]bool
}

// Default parses the embedded catalog.yaml.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Parse decodes a YAML-encoded catalog document into a Catalog.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("builtins: parse catalog: %w", err)
	}

	cat := &Catalog{
		Functions: make(map[string]types.Function, len(raw.Functions)),
		Qualified: make(map[string]types.Function),
		Modules:   make(map[string]bool, len(raw.Modules)),
	}
	for name, fn := range raw.Functions {
		resolved, err := resolveFunc(fn)
		if err != nil {
			return nil, fmt.Errorf("builtins: function %q: %w", name, err)
		}
		cat.Functions[name] = resolved
	}
	for modName, mod := range raw.Modules {
		cat.Modules[modName] = true
		for field, fn := range mod.Functions {
			resolved, err := resolveFunc(fn)
			if err != nil {
				return nil, fmt.Errorf("builtins: module %q.%q: %w", modName, field, err)
			}
			cat.Qualified[modName+"."+field] = resolved
		}
	}
	return cat, nil
}

func resolveFunc(fn rawFunc) (types.Function, error) {
	args := make([]types.Type, len(fn.Args))
	for i, a := range fn.Args {
		t, err := primitiveNamed(a)
		if err != nil {
			return types.Function{}, err
		}
		args[i] = t
	}
	rets := make([]types.Type, len(fn.Rets))
	for i, r := range fn.Rets {
		t, err := primitiveNamed(r)
		if err != nil {
			return types.Function{}, err
		}
		rets[i] = t
	}
	return types.Function{Args: args, Rets: rets}, nil
}

func primitiveNamed(name string) (types.Type, error) {
	switch name {
	case "nil":
		return types.Nil{}, nil
	case "boolean":
		return types.Boolean{}, nil
	case "integer":
		return types.Integer{}, nil
	case "float":
		return types.Float{}, nil
	case "string":
		return types.String{}, nil
	case "any":
		return types.Any{}, nil
	case "void":
		return types.Void{}, nil
	case "module":
		return types.Module{}, nil
	default:
		return nil, fmt.Errorf("unknown primitive type %q in catalog", name)
	}
}
