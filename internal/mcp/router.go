// internal/mcp/router.go
// Router MCP: menerima {tool, params} atau {calls: [...]} lalu mengeksekusi tool terdaftar.

package mcp

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const maxBatchCalls = 8

type Router struct {
	Registry *Registry
	Log      *logrus.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// CallHandler: POST /mcp/call.
func (rt *Router) CallHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ToolResponse{Error: "cannot read body"})
		return
	}

	var probe struct {
		Tool  string          `json:"tool"`
		Calls []ToolRequest   `json:"calls"`
		Param json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		writeJSON(w, http.StatusBadRequest, ToolResponse{Error: "bad request: invalid json"})
		return
	}

	entry := rt.entry(r)
	switch {
	case len(probe.Calls) > 0:
		if len(probe.Calls) > maxBatchCalls {
			writeJSON(w, http.StatusBadRequest, ToolResponse{Error: "too many calls in batch"})
			return
		}
		out := rt.Registry.ExecuteBatch(r.Context(), probe.Calls)
		entry.WithFields(logrus.Fields{
			"event":       "mcp.batch",
			"calls":       len(probe.Calls),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("mcp batch executed")
		writeJSON(w, http.StatusOK, map[string]any{"results": out})

	case strings.TrimSpace(probe.Tool) != "":
		tr := ToolRequest{Tool: strings.TrimSpace(probe.Tool), Params: probe.Param}
		resp := rt.Registry.Call(r.Context(), tr)
		fields := logrus.Fields{
			"event":       "mcp.call",
			"tool":        tr.Tool,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		status := http.StatusOK
		if !resp.Success {
			fields["error"] = resp.Error
			status = http.StatusUnprocessableEntity
			if _, ok := rt.Registry.Get(tr.Tool); !ok {
				status = http.StatusNotFound
			}
			entry.WithFields(fields).Warn("mcp call failed")
		} else {
			entry.WithFields(fields).Info("mcp call")
		}
		writeJSON(w, status, resp)

	default:
		writeJSON(w, http.StatusBadRequest, ToolResponse{Error: "bad request: tool or calls is required"})
	}
}

// ToolsHandler: GET /mcp/tools, katalog + daftar yang benar-benar terdaftar.
func (rt *Router) ToolsHandler(w http.ResponseWriter, r *http.Request) {
	defs, err := LoadToolDefs()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ToolResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tools":      defs,
		"registered": rt.Registry.List(),
	})
}

func (rt *Router) entry(r *http.Request) *logrus.Entry {
	l := rt.Log
	if l == nil {
		l = logrus.StandardLogger()
	}
	return l.WithField("request_id", r.Header.Get("X-Request-ID"))
}
