package services

import (
	"math"
	"testing"

	"oilgas-portfolio/internal/wells"
)

func TestDeclineStartsAtInitialRate(t *testing.T) {
	for _, qi := range []float64{1, 250, 1250, 9999.5} {
		if got := Decline(qi, 0.7, 0.8, 0); got != qi {
			t.Fatalf("Decline(%v, t=0) = %v, want %v", qi, got, qi)
		}
	}
}

func TestDeclineStrictlyDecreasing(t *testing.T) {
	prev := Decline(1000, 0.7, 0.8, 0)
	for i := 1; i <= 120; i++ {
		cur := Decline(1000, 0.7, 0.8, float64(i)/12)
		if cur >= prev {
			t.Fatalf("rate not decreasing at month %d: %v >= %v", i, cur, prev)
		}
		prev = cur
	}
}

func TestDeclineExponentialWhenBZero(t *testing.T) {
	got := Decline(1000, 0.5, 0, 2)
	want := 1000 * math.Exp(-1)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Decline(b=0) = %v, want %v", got, want)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("Decline(b=0) not finite: %v", got)
	}
}

func TestEstimateUltimateRecovery(t *testing.T) {
	eur := EUR(1250, 0.7, 0.8)
	if eur <= 0 {
		t.Fatalf("expected positive EUR, got %v", eur)
	}
	if again := EUR(1250, 0.7, 0.8); again != eur {
		t.Fatalf("EUR not deterministic: %v vs %v", eur, again)
	}
	// horizon lebih pendek -> volume lebih kecil
	short := EstimateUltimateRecovery(1250, 0.7, 0.8, DefaultEconomicLimit, 5)
	if short >= eur {
		t.Fatalf("5y EUR %v should be below 50y EUR %v", short, eur)
	}
	// qi di bawah economic limit -> tidak ada volume
	if got := EstimateUltimateRecovery(5, 0.7, 0.8, 10, 50); got != 0 {
		t.Fatalf("expected 0 EUR below economic limit, got %v", got)
	}
}

func TestFitDeclineCurveTooFewPoints(t *testing.T) {
	h := []wells.ProductionRecord{{Month: 1, Rate: 100}, {Month: 2, Rate: 90}}
	got := FitDeclineCurve(h)
	if got != (DeclineParams{}) {
		t.Fatalf("expected zero params, got %+v", got)
	}
}

func TestFitDeclineCurve(t *testing.T) {
	var h []wells.ProductionRecord
	for i := 0; i < 24; i++ {
		h = append(h, wells.ProductionRecord{Month: i + 1, Rate: Decline(1000, AssumedDi, AssumedB, float64(i)/12)})
	}
	p := FitDeclineCurve(h)
	if p.Qi != 1000 || p.Di != AssumedDi || p.B != AssumedB {
		t.Fatalf("unexpected params %+v", p)
	}
	if math.Abs(p.R2-1) > 1e-9 {
		t.Fatalf("perfect curve should give r2=1, got %v", p.R2)
	}
	if p.EUR != EUR(1000, AssumedDi, AssumedB) {
		t.Fatalf("EUR mismatch: %v", p.EUR)
	}
}

func TestFitDeclineCurveFlatSeries(t *testing.T) {
	h := []wells.ProductionRecord{{Rate: 50}, {Rate: 50}, {Rate: 50}}
	p := FitDeclineCurve(h)
	if p.R2 != 0 {
		t.Fatalf("flat series r2 should be 0, got %v", p.R2)
	}
}

func TestForecastNextYear(t *testing.T) {
	if got := ForecastNextYear(nil); got != nil {
		t.Fatalf("expected nil forecast for empty history, got %v", got)
	}

	var h []wells.ProductionRecord
	for i := 0; i < 24; i++ {
		h = append(h, wells.ProductionRecord{Month: i + 1, Rate: math.Round(Decline(1200, AssumedDi, AssumedB, float64(i)/12))})
	}
	fc := ForecastNextYear(h)
	if len(fc) != 12 {
		t.Fatalf("expected 12 points, got %d", len(fc))
	}
	for i, p := range fc {
		if p.Month != 24+i {
			t.Fatalf("point %d month = %d, want %d", i, p.Month, 24+i)
		}
		if p.Confidence != float64(95-5*i) {
			t.Fatalf("point %d confidence = %v", i, p.Confidence)
		}
		want := math.Round(Decline(1200, AssumedDi, AssumedB, float64(24+i)/12))
		if p.ForecastRate != want {
			t.Fatalf("point %d rate = %v, want %v", i, p.ForecastRate, want)
		}
	}
}
