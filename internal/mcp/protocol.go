// mcp/protocol.go
// Definisi struktur dasar MCP protocol

package mcp

import "encoding/json"

type ToolRequest struct {
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params,omitempty"`
}

type ToolResponse struct {
	Tool    string      `json:"tool,omitempty"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// BatchRequest menjalankan beberapa tool berurutan dalam satu panggilan.
type BatchRequest struct {
	Calls []ToolRequest `json:"calls"`
}
