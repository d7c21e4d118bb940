// internal/mcp/tools_json_consistency_test.go

package mcp_test

import (
	"testing"

	mcphandlers "oilgas-portfolio/internal/handlers/mcp"
	"oilgas-portfolio/internal/mcp"
	"oilgas-portfolio/internal/wells"
)

// Pastikan semua tool di mcp-tools.json SUDAH diregister, dan sebaliknya.
func TestToolsJsonMatchesRegistry(t *testing.T) {
	defs, err := mcp.LoadToolDefs()
	if err != nil {
		t.Fatalf("LoadToolDefs error: %v", err)
	}
	if len(defs) == 0 {
		t.Fatalf("no tools found in mcp-tools.json")
	}

	reg := mcp.NewRegistry()
	mcphandlers.NewTools(wells.NewRepository()).Register(reg)

	registered := map[string]struct{}{}
	for _, name := range reg.List() {
		registered[name] = struct{}{}
	}
	inCatalog := map[string]struct{}{}
	for _, d := range defs {
		inCatalog[d.Name] = struct{}{}
		if _, ok := registered[d.Name]; !ok {
			t.Errorf("tool %q exists in mcp-tools.json but NOT registered", d.Name)
		}
	}
	for name := range registered {
		if _, ok := inCatalog[name]; !ok {
			t.Errorf("tool %q registered but missing from mcp-tools.json", name)
		}
	}
}
