// internal/services/decline.go
// Model decline curve (Arps): rate, EUR, fit sederhana & forecast 12 bulan

package services

import (
	"math"

	"oilgas-portfolio/internal/wells"
)

const (
	DefaultEconomicLimit = 10.0 // BBL/day
	DefaultMaxYears      = 50.0

	// Nilai Di & b tidak di-regresi; dipakai asumsi tipikal shale.
	AssumedDi = 0.70
	AssumedB  = 0.8

	forecastMonths = 12
)

type DeclineParams struct {
	Qi  float64 `json:"qi"`
	Di  float64 `json:"di"`
	B   float64 `json:"b"`
	EUR float64 `json:"eur"`
	R2  float64 `json:"r2"`
}

type ForecastPoint struct {
	Month        int     `json:"month"`
	ForecastRate float64 `json:"forecast_rate"`
	Confidence   float64 `json:"confidence"`
}

// Decline: q(t) = qi / (1 + b*Di*t)^(1/b), t dalam tahun.
// b == 0 memakai limit eksponensial qi*e^(-Di*t).
func Decline(qi, di, b, t float64) float64 {
	if b == 0 {
		return qi * math.Exp(-di*t)
	}
	return qi / math.Pow(1+b*di*t, 1/b)
}

// EstimateUltimateRecovery mengintegrasikan Decline dengan langkah harian
// sampai rate <= economicLimit atau t >= maxYears. Sampel terakhir (yang
// sudah di bawah limit) tetap terhitung.
func EstimateUltimateRecovery(qi, di, b, economicLimit, maxYears float64) float64 {
	const dt = 1.0 / 365
	var eur, t float64
	rate := qi
	for rate > economicLimit && t < maxYears {
		rate = Decline(qi, di, b, t)
		eur += rate * dt * 365
		t += dt
	}
	return eur
}

// EUR dengan limit & horizon default.
func EUR(qi, di, b float64) float64 {
	return EstimateUltimateRecovery(qi, di, b, DefaultEconomicLimit, DefaultMaxYears)
}

// FitDeclineCurve: qi = rate pertama, Di/b asumsi tetap, r2 dihitung terhadap history.
// Kurang dari 3 titik -> parameter nol. SS_tot == 0 -> r2 = 0.
func FitDeclineCurve(history []wells.ProductionRecord) DeclineParams {
	if len(history) < 3 {
		return DeclineParams{}
	}
	qi := history[0].Rate

	var sum float64
	for _, h := range history {
		sum += h.Rate
	}
	mean := sum / float64(len(history))

	var ssRes, ssTot float64
	for i, h := range history {
		t := float64(i) / 12
		pred := Decline(qi, AssumedDi, AssumedB, t)
		ssRes += (h.Rate - pred) * (h.Rate - pred)
		ssTot += (h.Rate - mean) * (h.Rate - mean)
	}

	var r2 float64
	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
	}
	return DeclineParams{
		Qi:  qi,
		Di:  AssumedDi,
		B:   AssumedB,
		R2:  r2,
		EUR: EUR(qi, AssumedDi, AssumedB),
	}
}

// ForecastNextYear: refit dari seluruh history lalu proyeksi 12 bulan ke depan.
// Confidence 95 - 5*i hanya heuristik tampilan.
func ForecastNextYear(history []wells.ProductionRecord) []ForecastPoint {
	if len(history) == 0 {
		return nil
	}
	p := FitDeclineCurve(history)
	n := len(history)

	out := make([]ForecastPoint, 0, forecastMonths)
	for i := 0; i < forecastMonths; i++ {
		month := n + i
		t := float64(month) / 12
		out = append(out, ForecastPoint{
			Month:        month,
			ForecastRate: math.Round(Decline(p.Qi, p.Di, p.B, t)),
			Confidence:   float64(95 - i*5),
		})
	}
	return out
}
