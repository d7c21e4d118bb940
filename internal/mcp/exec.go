// internal/mcp/exec.go
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Call menjalankan satu tool in-process (tanpa HTTP nyata) dan membungkus hasilnya.
func (reg *Registry) Call(ctx context.Context, tr ToolRequest) ToolResponse {
	h, ok := reg.Get(tr.Tool)
	if !ok {
		return ToolResponse{Tool: tr.Tool, Error: "tool not found: " + tr.Tool}
	}

	// Body: default {}. RawMessage dipakai apa adanya.
	body := []byte("{}")
	if !isJSONNullOrEmpty(tr.Params) {
		body = tr.Params
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/mcp/internal/"+tr.Tool, bytes.NewReader(body))
	if err != nil {
		return ToolResponse{Tool: tr.Tool, Error: err.Error()}
	}
	// Penting: biar handler mau decode JSON body
	req.Header.Set("Content-Type", "application/json")

	rr := newMemRecorder()
	h.ServeHTTP(rr, req)

	if rr.status >= 200 && rr.status < 300 {
		if len(rr.buf) == 0 {
			return ToolResponse{Tool: tr.Tool, Success: true, Data: map[string]any{}}
		}
		var anyData interface{}
		if err := json.Unmarshal(rr.buf, &anyData); err != nil {
			return ToolResponse{Tool: tr.Tool, Success: true, Data: string(rr.buf)}
		}
		return ToolResponse{Tool: tr.Tool, Success: true, Data: anyData}
	}

	// Error: ambil pesan dari body kalau ada
	msg := strings.TrimSpace(string(rr.buf))
	var apiErr struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(rr.buf, &apiErr) == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}
	if msg == "" {
		msg = fmt.Sprintf("status %d", rr.status)
	}
	return ToolResponse{Tool: tr.Tool, Error: msg}
}

// ExecuteBatch menjalankan semua call berurutan; kegagalan satu call tidak menghentikan yang lain.
func (reg *Registry) ExecuteBatch(ctx context.Context, calls []ToolRequest) []ToolResponse {
	out := make([]ToolResponse, 0, len(calls))
	for _, c := range calls {
		if err := ctx.Err(); err != nil {
			out = append(out, ToolResponse{Tool: c.Tool, Error: err.Error()})
			continue
		}
		out = append(out, reg.Call(ctx, c))
	}
	return out
}

// ---- mini response recorder (in-memory) ----
type memRecorder struct {
	buf    []byte
	status int
	header http.Header
}

func newMemRecorder() *memRecorder { return &memRecorder{header: http.Header{}, status: 200} }
func (m *memRecorder) Header() http.Header { return m.header }
func (m *memRecorder) Write(b []byte) (int, error) {
	m.buf = append(m.buf, b...)
	return len(b), nil
}
func (m *memRecorder) WriteHeader(code int) { m.status = code }

// Util: cek apakah Params = null / {} / whitespace
func isJSONNullOrEmpty(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == "{}"
}
