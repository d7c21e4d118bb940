// internal/handlers/mcp/calc.go
// MCP Tools kalkulator: calc_npv, calc_irr, describe_values

package mcp

import (
	"net/http"

	"oilgas-portfolio/internal/services"
	"oilgas-portfolio/internal/util"
)

// maxIRRIterations membatasi max_iterations dari pemanggil.
const maxIRRIterations = 1000

type cashFlowReq struct {
	CashFlows     []float64 `json:"cash_flows"`
	DiscountRate  float64   `json:"discount_rate,omitempty"` // persen
	InitialGuess  *float64  `json:"initial_guess,omitempty"` // pecahan, mis. 0.10
	MaxIterations int       `json:"max_iterations,omitempty"`
	Tolerance     float64   `json:"tolerance,omitempty"`
}

func readCashFlows(r *http.Request) (cashFlowReq, error) {
	var in cashFlowReq
	if err := decodeBody(r, &in); err != nil {
		return in, err
	}
	if len(in.CashFlows) == 0 {
		return in, util.BadInput("cash_flows is required")
	}
	// (1+r/100)^t tidak terdefinisi untuk r <= -100%
	if in.DiscountRate <= -100 {
		return in, util.BadInput("discount_rate must be greater than -100")
	}
	return in, nil
}

func CalcNPVHandler(w http.ResponseWriter, r *http.Request) {
	in, err := readCashFlows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"npv":           services.PresentValue(in.CashFlows, in.DiscountRate),
		"discount_rate": in.DiscountRate,
	})
}

func CalcIRRHandler(w http.ResponseWriter, r *http.Request) {
	in, err := readCashFlows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts := services.DefaultIRROptions()
	if in.InitialGuess != nil {
		opts.InitialGuess = *in.InitialGuess
	}
	if in.MaxIterations > 0 {
		opts.MaxIterations = min(in.MaxIterations, maxIRRIterations)
	}
	if in.Tolerance > 0 {
		opts.Tolerance = in.Tolerance
	}
	writeJSON(w, http.StatusOK, services.InternalRateOfReturn(in.CashFlows, opts))
}

type valuesReq struct {
	Values []float64 `json:"values"`
}

func DescribeHandler(w http.ResponseWriter, r *http.Request) {
	var in valuesReq
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services.Describe(in.Values))
}
