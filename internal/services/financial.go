// internal/services/financial.go
// Solver finansial: NPV, IRR (Newton-Raphson), break-even, heuristik NPV/IRR skenario

package services

import (
	"errors"
	"math"

	"oilgas-portfolio/internal/wells"
)

const (
	DefaultOpexPerBBL   = 15.0
	DefaultDiscountRate = 10.0

	// GOR default bila sumur tidak punya nilai
	defaultScenarioGOR = 2.5
	// titik tengah umur produksi untuk diskonto tunggal
	scenarioMidLifeYears = 5.0
	// umur produksi asumsi untuk payback
	scenarioLifeYears = 10.0
)

var ErrZeroEUR = errors.New("eur must be positive")

// PresentValue: sum cf[i] / (1 + r/100)^i, periode 0 tidak didiskon.
func PresentValue(cashFlows []float64, discountRatePercent float64) float64 {
	var npv float64
	for i, cf := range cashFlows {
		npv += cf / math.Pow(1+discountRatePercent/100, float64(i))
	}
	return npv
}

type IRROptions struct {
	InitialGuess  float64
	MaxIterations int
	Tolerance     float64
}

func DefaultIRROptions() IRROptions {
	return IRROptions{InitialGuess: 0.10, MaxIterations: 100, Tolerance: 1e-4}
}

type IRRResult struct {
	Rate       float64 `json:"rate"` // persen
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
}

// InternalRateOfReturn mencari rate dengan Newton-Raphson. Rate dijepit minimal -0.99.
// Tidak konvergen -> iterasi terakhir dikembalikan dengan Converged=false.
func InternalRateOfReturn(cashFlows []float64, opts IRROptions) IRRResult {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 100
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = 1e-4
	}
	rate := opts.InitialGuess

	for i := 0; i < opts.MaxIterations; i++ {
		var npv, dnpv float64
		for t, cf := range cashFlows {
			df := math.Pow(1+rate, float64(t))
			npv += cf / df
			dnpv -= float64(t) * cf / (df * (1 + rate))
		}
		if math.Abs(npv) < opts.Tolerance {
			return IRRResult{Rate: rate * 100, Converged: true, Iterations: i + 1}
		}
		if dnpv == 0 || math.IsNaN(dnpv) || math.IsInf(npv, 0) {
			return IRRResult{Rate: rate * 100, Iterations: i + 1}
		}

		next := rate - npv/dnpv
		if math.IsInf(next, 0) || math.IsNaN(next) {
			return IRRResult{Rate: rate * 100, Iterations: i + 1}
		}
		rate = max(next, -0.99)
	}
	return IRRResult{Rate: rate * 100, Iterations: opts.MaxIterations}
}

// BreakEvenPrice: wellCost(MM$)*1000/EUR(MBBL) + opex ($/BBL).
func BreakEvenPrice(wellCost, eur, opexPerBBL float64) (float64, error) {
	if eur <= 0 {
		return 0, ErrZeroEUR
	}
	return wellCost*1000/eur + opexPerBBL, nil
}

// ScenarioNPV adalah heuristik sensitivitas harga, BUKAN model cash-flow:
// (revenue - opex - capex) dari EUR total, didiskon sekali di tahun ke-5. Hasil MM$.
func ScenarioNPV(w wells.Well, oilPrice, gasPrice, discountRatePercent float64) float64 {
	gor := w.GOR()
	if gor == 0 {
		gor = defaultScenarioGOR
	}
	eurOil := w.Economics.EUR * 1000 // MBBL -> BBL
	eurGas := eurOil * gor * 1000    // MCF

	revenue := eurOil*oilPrice + eurGas*gasPrice
	capex := w.WellCost * 1_000_000
	opex := eurOil * DefaultOpexPerBBL

	df := math.Pow(1+discountRatePercent/100, scenarioMidLifeYears)
	return (revenue - opex - capex) / df / 1_000_000
}

// ScenarioIRR adalah aproksimasi berbasis payback: (100/payback)*1.5, dijepit [0,100].
func ScenarioIRR(w wells.Well, oilPrice, gasPrice float64) float64 {
	capex := w.WellCost
	if capex == 0 {
		return 0
	}
	npv := ScenarioNPV(w, oilPrice, gasPrice, 0)
	payback := capex / (npv / scenarioLifeYears)
	if payback <= 0 || math.IsNaN(payback) {
		return 0
	}
	irr := (100 / payback) * 1.5
	return math.Max(0, math.Min(100, irr))
}
