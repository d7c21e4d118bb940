// internal/handlers/mcp/tools.go
// Wiring MCP tools analitik ke registry

package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	mcpcore "oilgas-portfolio/internal/mcp"
	"oilgas-portfolio/internal/services"
	"oilgas-portfolio/internal/util"
	"oilgas-portfolio/internal/wells"
)

// Tools menampung dependensi semua handler tool (diinject dari app).
type Tools struct {
	Repo      *wells.Repository
	Portfolio *services.PortfolioAnalyzer
	Scenarios *services.ScenarioEngine
}

func NewTools(repo *wells.Repository) *Tools {
	return &Tools{
		Repo:      repo,
		Portfolio: services.NewPortfolioAnalyzer(repo),
		Scenarios: services.NewScenarioEngine(repo),
	}
}

// Register mendaftarkan semua tool MCP ke registry.
func (t *Tools) Register(reg *mcpcore.Registry) {
	// Portofolio & asset
	reg.RegisterFunc("get_portfolio_summary", t.PortfolioSummaryHandler)
	reg.RegisterFunc("rank_assets", t.RankAssetsHandler)
	reg.RegisterFunc("get_performance_scores", t.PerformanceScoresHandler)

	// Skenario harga
	reg.RegisterFunc("compare_scenarios", t.CompareScenariosHandler)
	reg.RegisterFunc("run_scenario", t.RunScenarioHandler)

	// Per sumur
	reg.RegisterFunc("get_production", t.GetProductionHandler)
	reg.RegisterFunc("forecast_well", t.ForecastWellHandler)
	reg.RegisterFunc("well_economics", t.WellEconomicsHandler)
	reg.RegisterFunc("detect_anomalies", t.DetectAnomaliesHandler)

	// Kalkulator murni
	reg.RegisterFunc("calc_npv", CalcNPVHandler)
	reg.RegisterFunc("calc_irr", CalcIRRHandler)
	reg.RegisterFunc("describe_values", DescribeHandler)
}

// decodeBody: body kosong dianggap {} (GET tanpa payload).
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return util.BadInput("invalid json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	// encode dulu ke buffer: NaN/Inf gagal di-encode -> 500, bukan 200 kosong
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		b, _ := json.Marshal(map[string]string{"error": "internal", "message": "encode response: " + err.Error()})
		_, _ = w.Write(b)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, err error) {
	ae := util.AsAppError(err)
	switch {
	case errors.Is(err, wells.ErrWellNotFound):
		ae = util.Wrap("not_found", err)
	case errors.Is(err, services.ErrUnknownMetric), errors.Is(err, services.ErrZeroEUR):
		ae = util.Wrap("bad_input", err)
	}
	writeJSON(w, ae.HTTPStatus(), map[string]any{"error": ae.Code, "message": ae.Message})
}
