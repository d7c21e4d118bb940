// internal/handlers/mcp/scenario.go
// MCP Tools: compare_scenarios, run_scenario

package mcp

import (
	"net/http"

	"oilgas-portfolio/internal/services"
	"oilgas-portfolio/internal/util"
)

func (t *Tools) CompareScenariosHandler(w http.ResponseWriter, r *http.Request) {
	cmp := t.Scenarios.CompareScenarios()
	writeJSON(w, http.StatusOK, map[string]any{
		"scenarios":   cmp,
		"sensitivity": cmp.Sensitivity(),
		"hurdle_rate": services.HurdleRate,
	})
}

// scenarioReq: scenario bernama, atau harga custom (oil_price > 0).
type scenarioReq struct {
	Scenario     string   `json:"scenario,omitempty"`
	OilPrice     float64  `json:"oil_price,omitempty"`
	GasPrice     float64  `json:"gas_price,omitempty"`
	DiscountRate *float64 `json:"discount_rate,omitempty"`
}

func (t *Tools) RunScenarioHandler(w http.ResponseWriter, r *http.Request) {
	in := scenarioReq{Scenario: r.URL.Query().Get("scenario")}
	if in.Scenario == "" {
		if err := decodeBody(r, &in); err != nil {
			writeError(w, err)
			return
		}
	}

	if in.OilPrice < 0 || in.GasPrice < 0 {
		writeError(w, util.BadInput("prices must not be negative"))
		return
	}

	if in.OilPrice == 0 {
		p, ok := services.Scenario(in.Scenario)
		if !ok && in.Scenario != "" {
			writeError(w, util.BadInput("unknown scenario: "+in.Scenario))
			return
		}
		if in.DiscountRate == nil {
			writeJSON(w, http.StatusOK, t.Scenarios.Run(p))
			return
		}
		in.OilPrice, in.GasPrice = p.OilPrice, p.GasPrice
	}

	disc := services.DefaultDiscountRate
	if in.DiscountRate != nil {
		disc = *in.DiscountRate
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"oil_price":     in.OilPrice,
		"gas_price":     in.GasPrice,
		"discount_rate": disc,
		"metrics":       t.Scenarios.PortfolioMetrics(in.OilPrice, in.GasPrice, disc),
		"assets":        t.Scenarios.AssetMetrics(in.OilPrice, in.GasPrice, disc),
	})
}
