// internal/handlers/mcp/well.go
// MCP Tools per sumur: get_production, forecast_well, well_economics, detect_anomalies

package mcp

import (
	"net/http"
	"strconv"
	"strings"

	"oilgas-portfolio/internal/services"
	"oilgas-portfolio/internal/util"
	"oilgas-portfolio/internal/wells"
)

type wellReq struct {
	WellID    string  `json:"well_id"`
	Days      int     `json:"days,omitempty"`       // get_production: batasi ke N hari terakhir
	Opex      float64 `json:"opex,omitempty"`       // well_economics: $/BBL
	MinZScore float64 `json:"min_zscore,omitempty"` // detect_anomalies
}

// readWellReq: terima well_id / well (alias) dari query, lalu body JSON.
func readWellReq(r *http.Request) (wellReq, error) {
	q := r.URL.Query()
	in := wellReq{WellID: strings.TrimSpace(q.Get("well_id"))}
	if in.WellID == "" {
		in.WellID = strings.TrimSpace(q.Get("well"))
	}
	if v := q.Get("days"); v != "" {
		if n, _ := strconv.Atoi(v); n > 0 {
			in.Days = n
		}
	}
	if in.WellID == "" {
		if err := decodeBody(r, &in); err != nil {
			return in, err
		}
		in.WellID = strings.TrimSpace(in.WellID)
	}
	if in.WellID == "" {
		return in, util.BadInput("well_id is required")
	}
	return in, nil
}

func (t *Tools) GetProductionHandler(w http.ResponseWriter, r *http.Request) {
	in, err := readWellReq(r)
	if err != nil {
		writeError(w, err)
		return
	}
	well, err := t.Repo.Get(in.WellID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"well_id": well.ID,
		"status":  well.Status(),
		"history": t.Repo.History(well.ID, in.Days),
	})
}

func (t *Tools) ForecastWellHandler(w http.ResponseWriter, r *http.Request) {
	in, err := readWellReq(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := t.Repo.Get(in.WellID); err != nil {
		writeError(w, err)
		return
	}
	hist := t.Repo.History(in.WellID, 0)
	writeJSON(w, http.StatusOK, map[string]any{
		"well_id":  in.WellID,
		"params":   services.FitDeclineCurve(hist),
		"forecast": services.ForecastNextYear(hist),
	})
}

type wellEconomics struct {
	WellID       string                 `json:"well_id"`
	Cached       wells.Economics        `json:"cached"`
	BreakEven    *float64               `json:"break_even,omitempty"` // nil bila EUR 0
	OilPrice     float64                `json:"oil_price"`
	GasPrice     float64                `json:"gas_price"`
	DiscountRate float64                `json:"discount_rate"`
	ScenarioNPV  float64                `json:"scenario_npv"`
	ScenarioIRR  float64                `json:"scenario_irr"`
	Decline      services.DeclineParams `json:"decline"`
}

func (t *Tools) WellEconomicsHandler(w http.ResponseWriter, r *http.Request) {
	in, err := readWellReq(r)
	if err != nil {
		writeError(w, err)
		return
	}
	well, err := t.Repo.Get(in.WellID)
	if err != nil {
		writeError(w, err)
		return
	}
	opex := in.Opex
	if opex <= 0 {
		opex = services.DefaultOpexPerBBL
	}

	s := t.Repo.Settings()
	out := wellEconomics{
		WellID:       well.ID,
		Cached:       well.Economics,
		OilPrice:     s.OilPrice,
		GasPrice:     s.GasPrice,
		DiscountRate: s.DiscountRate,
		ScenarioNPV:  services.ScenarioNPV(well, s.OilPrice, s.GasPrice, s.DiscountRate),
		ScenarioIRR:  services.ScenarioIRR(well, s.OilPrice, s.GasPrice),
		Decline:      services.FitDeclineCurve(t.Repo.History(well.ID, 0)),
	}
	if be, err := services.BreakEvenPrice(well.WellCost, well.Economics.EUR, opex); err == nil {
		out.BreakEven = &be
	}
	writeJSON(w, http.StatusOK, out)
}

func (t *Tools) DetectAnomaliesHandler(w http.ResponseWriter, r *http.Request) {
	in, err := readWellReq(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := t.Repo.Get(in.WellID); err != nil {
		writeError(w, err)
		return
	}
	hist := t.Repo.History(in.WellID, 0)
	if len(hist) == 0 {
		writeError(w, util.BadInput("well has no production history"))
		return
	}
	anomalies, err := services.RateAnomalies(hist, in.MinZScore)
	if err != nil {
		writeError(w, util.Wrap("bad_input", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"well_id":   in.WellID,
		"anomalies": anomalies,
		"variance":  services.ForecastVariance(hist),
	})
}
