// internal/wells/history.go
// Generator history produksi bulanan (sintetis, hyperbolic decline + noise)

package wells

import (
	"math"
	"math/rand/v2"
)

const (
	DefaultHistoryMonths = 24
	DaysPerMonth         = 30

	// asumsi tipikal shale, sama dengan parameter fit decline
	syntheticDi = 0.70
	syntheticB  = 0.8
)

type ProductionRecord struct {
	Month      int      `json:"month"`
	Date       string   `json:"date,omitempty"` // YYYY-MM-DD
	Rate       float64  `json:"rate"`
	Forecast   float64  `json:"forecast"`
	Cumulative float64  `json:"cumulative"`
	WaterCut   *float64 `json:"water_cut,omitempty"`
	GOR        *float64 `json:"gor,omitempty"`
}

// GenerateHistory membuat history bulanan untuk satu sumur.
// Sumur Drilling atau tanpa IP30 menghasilkan slice kosong.
// Noise aktual: faktor uniform [0.95, 1.05) dari rng.
func GenerateHistory(w Well, months int, rng *rand.Rand) []ProductionRecord {
	qi := w.IP30()
	if qi == 0 || w.Status() == StatusDrilling || months <= 0 {
		return []ProductionRecord{}
	}

	start := w.StartDate()
	wc, gor := w.WaterCut(), w.GOR()

	out := make([]ProductionRecord, 0, months)
	var cum float64
	for i := 0; i < months; i++ {
		t := float64(i) / 12
		rate := qi / math.Pow(1+syntheticB*syntheticDi*t, 1/syntheticB)

		variation := 0.95 + rng.Float64()*0.1
		actual := rate * variation

		// cumulative dibulatkan per bulan, bulan berikutnya lanjut dari nilai bulat
		cum = math.Round(cum + actual*DaysPerMonth)

		rec := ProductionRecord{
			Month:      i + 1,
			Rate:       math.Round(actual),
			Forecast:   math.Round(rate * 1.05),
			Cumulative: cum,
		}
		if !start.IsZero() {
			rec.Date = start.AddDate(0, i, 0).Format("2006-01-02")
		}
		if wc != 0 {
			v := wc + float64(i)*0.5
			rec.WaterCut = &v
		}
		if gor != 0 {
			v := gor + float64(i)*5
			rec.GOR = &v
		}
		out = append(out, rec)
	}
	return out
}
