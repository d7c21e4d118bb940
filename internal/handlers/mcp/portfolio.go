// internal/handlers/mcp/portfolio.go
// MCP Tools: get_portfolio_summary, rank_assets, get_performance_scores

package mcp

import (
	"net/http"
	"strings"

	"oilgas-portfolio/internal/util"
)

func (t *Tools) PortfolioSummaryHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"portfolio": t.Portfolio.AnalyzePortfolio(),
		"assets":    t.Portfolio.AnalyzeAssets(),
		"economics": t.Repo.Settings(),
	})
}

type rankReq struct {
	Metric string `json:"metric"`
	Limit  int    `json:"limit,omitempty"`
}

func (t *Tools) RankAssetsHandler(w http.ResponseWriter, r *http.Request) {
	in := rankReq{Metric: strings.TrimSpace(r.URL.Query().Get("metric"))}
	if in.Metric == "" {
		if err := decodeBody(r, &in); err != nil {
			writeError(w, err)
			return
		}
	}
	if in.Metric == "" {
		in.Metric = "totalNPV"
	}
	ranked, err := t.Portfolio.RankByMetric(in.Metric)
	if err != nil {
		writeError(w, err)
		return
	}
	if in.Limit > 0 && in.Limit < len(ranked) {
		ranked = ranked[:in.Limit]
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"metric":    in.Metric,
		"ascending": in.Metric == "breakEven" || in.Metric == "avgBreakEven",
		"ranking":   ranked,
	})
}

type scoreReq struct {
	Asset string `json:"asset,omitempty"`
}

type assetScore struct {
	Asset string  `json:"asset"`
	Score float64 `json:"score"`
}

func (t *Tools) PerformanceScoresHandler(w http.ResponseWriter, r *http.Request) {
	in := scoreReq{Asset: strings.TrimSpace(r.URL.Query().Get("asset"))}
	if in.Asset == "" {
		if err := decodeBody(r, &in); err != nil {
			writeError(w, err)
			return
		}
	}

	if in.Asset != "" {
		score, ok := t.Portfolio.PerformanceScore(in.Asset)
		if !ok {
			writeError(w, util.NotFound("asset not found: "+in.Asset))
			return
		}
		writeJSON(w, http.StatusOK, assetScore{Asset: in.Asset, Score: score})
		return
	}

	scores := t.Portfolio.PerformanceScores()
	out := make([]assetScore, 0, len(scores))
	for _, ag := range t.Portfolio.AnalyzeAssets() {
		out = append(out, assetScore{Asset: ag.Name, Score: scores[ag.Name]})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"weights": map[string]float64{"npv": 0.30, "irr": 0.25, "production": 0.25, "break_even": 0.20},
		"scores":  out,
	})
}

