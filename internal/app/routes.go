// internal/app/routes.go
/*
Root (gorilla/mux):
  /healthz /readyz /metrics       ops
  /mcp/call /mcp/tools            MCP tool router
  /api/v1/...                     REST (chi subrouter)
*/
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	hh "oilgas-portfolio/internal/handlers/http"
	"oilgas-portfolio/internal/mcp"
	"oilgas-portfolio/internal/middleware"
)

type RouteDeps struct {
	API       *hh.API
	MCPRouter *mcp.Router
	Log       *logrus.Logger
}

// RegisterRoutes memasang semua route + middleware ke root router.
func RegisterRoutes(r *mux.Router, deps RouteDeps) {
	r.Use(middleware.RequestID, middleware.Logging(deps.Log), middleware.CORS)

	// --- ops ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.ReadyHandler(deps.API.Repo)).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler(deps.API.Repo)).Methods(http.MethodGet)

	// --- MCP ---
	r.HandleFunc("/mcp/call", deps.MCPRouter.CallHandler).Methods(http.MethodPost)
	r.HandleFunc("/mcp/tools", deps.MCPRouter.ToolsHandler).Methods(http.MethodGet)

	// preflight untuk semua path
	r.Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)

	// --- REST /api/v1 ---
	r.PathPrefix("/api/v1").Handler(apiRouter(deps.API))
}

func apiRouter(api *hh.API) http.Handler {
	c := chi.NewRouter()
	c.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/wells", api.ListWells)
		v1.Get("/wells/filters", api.Filters)
		v1.Get("/wells/{id}", api.GetWell)
		v1.Get("/wells/{id}/history", api.WellHistory)
		v1.Get("/wells/{id}/forecast", api.WellForecast)

		v1.Post("/import", api.Import)
		v1.Get("/export", api.Export)
		v1.Get("/economics", api.Settings)
		v1.Post("/economics/recalculate", api.Recalculate)

		v1.Route("/portfolio", func(p chi.Router) {
			p.Get("/", api.PortfolioSummary)
			p.Get("/assets", api.Assets)
			p.Get("/assets/{name}", api.Asset)
			p.Get("/rankings/{metric}", api.Rankings)
			p.Get("/scores", api.Scores)
			p.Get("/drilling", api.Drilling)
			p.Get("/completions", api.Completions)
			p.Get("/type-curves", api.TypeCurves)
			p.Get("/proppant", api.Proppant)
			p.Get("/capital-efficiency", api.CapitalEfficiency)
			p.Get("/top/{kind}", api.TopWells)
			p.Get("/narrative", api.Narrative)
		})

		v1.Route("/scenarios", func(s chi.Router) {
			s.Get("/", api.CompareScenarios)
			s.Get("/sensitivity", api.Sensitivity)
			s.Get("/{key}", api.Scenario)
		})
	})
	return c
}
