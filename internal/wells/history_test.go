package wells

import (
	"math/rand/v2"
	"testing"
)

func TestGenerateHistoryShape(t *testing.T) {
	w := SampleWells()[0] // W-001, ip30 1250
	rng := rand.New(rand.NewPCG(1, 2))
	h := GenerateHistory(w, 24, rng)
	if len(h) != 24 {
		t.Fatalf("months = %d, want 24", len(h))
	}
	if h[0].Month != 1 || h[0].Date != "2022-05-20" {
		t.Fatalf("first record = %+v", h[0])
	}
	// bulan pertama: rate = qi * [0.95, 1.05)
	if h[0].Rate < 1187 || h[0].Rate > 1313 {
		t.Fatalf("month 1 rate %v outside noise band", h[0].Rate)
	}
	if h[0].Forecast != 1313 {
		t.Fatalf("month 1 forecast = %v, want round(1250*1.05)", h[0].Forecast)
	}
	prev := 0.0
	for i, r := range h {
		if r.Cumulative <= prev {
			t.Fatalf("cumulative not increasing at %d", i)
		}
		prev = r.Cumulative
		if *r.WaterCut != 15+float64(i)*0.5 || *r.GOR != 850+float64(i)*5 {
			t.Fatalf("month %d water cut / gor drift wrong: %v %v", r.Month, *r.WaterCut, *r.GOR)
		}
	}
	if h[23].Forecast >= h[0].Forecast {
		t.Fatalf("forecast should decline: %v -> %v", h[0].Forecast, h[23].Forecast)
	}
}

func TestGenerateHistoryDeterministicWithSeed(t *testing.T) {
	w := SampleWells()[1]
	a := GenerateHistory(w, 12, rand.New(rand.NewPCG(9, 9)))
	b := GenerateHistory(w, 12, rand.New(rand.NewPCG(9, 9)))
	for i := range a {
		if a[i].Rate != b[i].Rate || a[i].Cumulative != b[i].Cumulative {
			t.Fatalf("same seed produced different history at %d", i)
		}
	}
}

func TestGenerateHistoryEmptyCases(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	drilling := SampleWells()[9]
	if h := GenerateHistory(drilling, 24, rng); len(h) != 0 {
		t.Fatalf("drilling well got %d records", len(h))
	}
	if h := GenerateHistory(Well{ID: "x", State: Active{}}, 24, rng); len(h) != 0 {
		t.Fatalf("zero ip30 got %d records", len(h))
	}
	if h := GenerateHistory(SampleWells()[0], 0, rng); h == nil || len(h) != 0 {
		t.Fatalf("months=0 should give empty non-nil slice")
	}
}
