// internal/mcp/tools_def.go
package mcp

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed mcp-tools.json
var toolsJSON []byte

type ToolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}
type ToolCatalog struct {
	Tools []ToolDef `json:"tools"`
}

var (
	toolDefs     []ToolDef
	toolDefsOnce sync.Once
	toolDefsErr  error
)

// LoadToolDefs membaca katalog tool yang di-embed (sekali).
func LoadToolDefs() ([]ToolDef, error) {
	toolDefsOnce.Do(func() {
		var cat ToolCatalog
		if err := json.Unmarshal(toolsJSON, &cat); err != nil {
			toolDefsErr = err
			return
		}
		toolDefs = cat.Tools
	})
	return toolDefs, toolDefsErr
}
