package services

import (
	"math"
	"testing"

	"oilgas-portfolio/internal/wells"
)

func TestForecastVariance(t *testing.T) {
	h := []wells.ProductionRecord{
		{Month: 1, Rate: 110, Forecast: 100},
		{Month: 2, Rate: 90, Forecast: 100},
		{Month: 3, Rate: 50, Forecast: 0},
	}
	v := ForecastVariance(h)
	if v[0].Value != 10 || v[0].DeltaP != 10 {
		t.Fatalf("month 1 variance %+v", v[0])
	}
	if v[1].Value != -10 || v[1].DeltaP != -10 {
		t.Fatalf("month 2 variance %+v", v[1])
	}
	if v[2].DeltaP != 0 {
		t.Fatalf("zero forecast should give 0%%, got %v", v[2].DeltaP)
	}
}

func TestRateAnomalies(t *testing.T) {
	var h []wells.ProductionRecord
	for i := 0; i < 20; i++ {
		h = append(h, wells.ProductionRecord{Month: i + 1, Rate: 100})
	}
	h[7].Rate = 400

	got, err := RateAnomalies(h, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Month != 8 {
		t.Fatalf("expected a single anomaly at month 8, got %+v", got)
	}

	flat := []wells.ProductionRecord{{Rate: 5}, {Rate: 5}}
	if got, _ := RateAnomalies(flat, 0); len(got) != 0 {
		t.Fatalf("flat series should have no anomalies, got %+v", got)
	}
	if _, err := RateAnomalies(nil, 2); err == nil {
		t.Fatal("expected error on empty history")
	}
}

func TestPearsonCorrelation(t *testing.T) {
	r, err := PearsonCorrelation([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	if err != nil || math.Abs(r-1) > 1e-12 {
		t.Fatalf("r = %v, err = %v", r, err)
	}
	r, _ = PearsonCorrelation([]float64{1, 2, 3}, []float64{3, 2, 1})
	if math.Abs(r+1) > 1e-12 {
		t.Fatalf("r = %v, want -1", r)
	}
	if r, _ := PearsonCorrelation([]float64{1, 1, 1}, []float64{1, 2, 3}); r != 0 {
		t.Fatalf("constant series should give 0, got %v", r)
	}
	if _, err := PearsonCorrelation([]float64{1}, []float64{1}); err == nil {
		t.Fatal("expected error for single point")
	}
}
