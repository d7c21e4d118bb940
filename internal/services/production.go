// internal/services/production.go
// Diagnostik produksi: variance aktual vs forecast, anomali z-score, korelasi Pearson

package services

import (
	"errors"
	"math"

	"oilgas-portfolio/internal/wells"
)

const DefaultMinZScore = 2.5

type Variance struct {
	Month  int     `json:"month"`
	Date   string  `json:"date,omitempty"`
	Value  float64 `json:"value"`   // actual - forecast
	DeltaP float64 `json:"delta_p"` // % variance
}

// ForecastVariance menghitung perbedaan rate aktual vs forecast per bulan.
func ForecastVariance(history []wells.ProductionRecord) []Variance {
	out := make([]Variance, 0, len(history))
	for _, h := range history {
		d := h.Rate - h.Forecast
		var p float64
		if h.Forecast != 0 {
			p = d / h.Forecast * 100.0
		}
		out = append(out, Variance{Month: h.Month, Date: h.Date, Value: d, DeltaP: p})
	}
	return out
}

type Anomaly struct {
	Month  int     `json:"month"`
	Date   string  `json:"date,omitempty"`
	Rate   float64 `json:"rate"`
	ZScore float64 `json:"z_score"`
}

// RateAnomalies mendeteksi bulan dengan |z| >= minZ (mean & stddev populasi).
// History datar (std == 0) tidak punya anomali.
func RateAnomalies(history []wells.ProductionRecord, minZ float64) ([]Anomaly, error) {
	if len(history) == 0 {
		return nil, errors.New("empty history")
	}
	if minZ <= 0 {
		minZ = DefaultMinZScore
	}
	rates := make([]float64, 0, len(history))
	for _, h := range history {
		rates = append(rates, h.Rate)
	}
	st := Describe(rates)
	if st.Std == 0 {
		return []Anomaly{}, nil
	}

	out := []Anomaly{}
	for _, h := range history {
		z := (h.Rate - st.Mean) / st.Std
		if math.Abs(z) >= minZ {
			out = append(out, Anomaly{Month: h.Month, Date: h.Date, Rate: h.Rate, ZScore: z})
		}
	}
	return out, nil
}

// PearsonCorrelation antar 2 deret (index sejajar). Deret konstan -> 0.
func PearsonCorrelation(xs, ys []float64) (float64, error) {
	n := min(len(xs), len(ys))
	if n < 2 {
		return 0, errors.New("insufficient points for correlation")
	}
	var sx, sy, sxx, syy, sxy float64
	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		sx += x
		sy += y
		sxx += x * x
		syy += y * y
		sxy += x * y
	}
	fn := float64(n)
	num := fn*sxy - sx*sy
	den := math.Sqrt((fn*sxx - sx*sx) * (fn*syy - sy*sy))
	if den == 0 || math.IsNaN(den) {
		return 0, nil
	}
	return num / den, nil
}
