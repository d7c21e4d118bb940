// internal/app/app.go
package app

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	hh "oilgas-portfolio/internal/handlers/http"
	mcphandlers "oilgas-portfolio/internal/handlers/mcp"
	"oilgas-portfolio/internal/llm"
	"oilgas-portfolio/internal/mcp"
	"oilgas-portfolio/internal/wells"
)

// Deps: semua dependensi yang diinject ke router (tanpa global state).
type Deps struct {
	Repo     *wells.Repository
	Narrator *llm.Narrator // nil -> narasi fallback
	Log      *logrus.Logger
}

// App menampung router utama
type App struct {
	Router   *mux.Router
	Repo     *wells.Repository
	Registry *mcp.Registry
	Log      *logrus.Logger
}

// New membuat instance App + registrasi semua routes (HTTP & MCP)
func New(d Deps) *App {
	if d.Log == nil {
		d.Log = logrus.StandardLogger()
	}
	if d.Repo == nil {
		d.Repo = wells.NewRepository()
	}

	// === MCP tools ===
	reg := mcp.NewRegistry()
	mcphandlers.NewTools(d.Repo).Register(reg)

	a := &App{
		Router:   mux.NewRouter(),
		Repo:     d.Repo,
		Registry: reg,
		Log:      d.Log,
	}
	RegisterRoutes(a.Router, RouteDeps{
		API:       hh.NewAPI(d.Repo, d.Narrator, d.Log),
		MCPRouter: &mcp.Router{Registry: reg, Log: d.Log},
		Log:       d.Log,
	})
	return a
}
