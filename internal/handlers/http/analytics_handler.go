// internal/handlers/http/analytics_handler.go
// Handler analitik portofolio, asset, operasional, skenario & narasi

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"oilgas-portfolio/internal/llm"
	"oilgas-portfolio/internal/services"
	"oilgas-portfolio/internal/util"
)

func limitParam(r *http.Request, def int) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func (a *API) PortfolioSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Portfolio.AnalyzePortfolio())
}

func (a *API) Assets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Portfolio.AnalyzeAssets())
}

func (a *API) Asset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ag, ok := a.Portfolio.Asset(name)
	if !ok {
		a.writeError(w, r, util.NotFound("asset not found: "+name))
		return
	}
	score, _ := a.Portfolio.PerformanceScore(name)
	writeJSON(w, http.StatusOK, map[string]any{"asset": ag, "performance_score": score})
}

// Rankings: GET /api/v1/portfolio/rankings/{metric}
func (a *API) Rankings(w http.ResponseWriter, r *http.Request) {
	ranked, err := a.Portfolio.RankByMetric(chi.URLParam(r, "metric"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}

func (a *API) Scores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Portfolio.PerformanceScores())
}

func (a *API) Drilling(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Portfolio.DrillingPerformance())
}

func (a *API) Completions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Portfolio.CompletionDesign())
}

// TypeCurves: GET /api/v1/portfolio/type-curves?vintage=&completion_type=
func (a *API) TypeCurves(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vintage := 0
	if v := q.Get("vintage"); v != "" && v != "all" {
		n, err := strconv.Atoi(v)
		if err != nil {
			a.writeError(w, r, util.BadInput("vintage must be a year"))
			return
		}
		vintage = n
	}
	writeJSON(w, http.StatusOK, a.Portfolio.TypeCurves(vintage, q.Get("completion_type")))
}

func (a *API) Proppant(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Portfolio.ProppantVsProduction())
}

func (a *API) CapitalEfficiency(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Portfolio.CapitalEfficiency())
}

// TopWells: GET /api/v1/portfolio/top/{kind}?limit=N, kind = producing|performing|underperforming
func (a *API) TopWells(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r, 5)
	switch chi.URLParam(r, "kind") {
	case "producing":
		writeJSON(w, http.StatusOK, a.Portfolio.TopProducing(limit))
	case "performing":
		writeJSON(w, http.StatusOK, a.Portfolio.TopPerforming(limit))
	case "underperforming":
		writeJSON(w, http.StatusOK, a.Portfolio.Underperforming(limit))
	default:
		a.writeError(w, r, util.NotFound("unknown ranking kind"))
	}
}

func (a *API) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Scenarios.CompareScenarios())
}

func (a *API) Sensitivity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Scenarios.CompareScenarios().Sensitivity())
}

// Scenario: GET /api/v1/scenarios/{key}
func (a *API) Scenario(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	p, ok := services.Scenario(key)
	if !ok {
		a.writeError(w, r, util.NotFound("unknown scenario: "+key))
		return
	}
	writeJSON(w, http.StatusOK, a.Scenarios.Run(p))
}

// Narrative: GET /api/v1/portfolio/narrative, ringkasan teks (LLM atau fallback).
func (a *API) Narrative(w http.ResponseWriter, r *http.Request) {
	brief := llm.BuildBrief(a.Portfolio, a.Scenarios)
	n := a.Narrator.Narrate(r.Context(), brief)
	if n.Error != "" {
		a.Log.WithField("request_id", r.Header.Get("X-Request-ID")).
			WithField("error", n.Error).Warn("narrative fell back to extractive summary")
	}
	writeJSON(w, http.StatusOK, n)
}
