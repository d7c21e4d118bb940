package services

import (
	"errors"
	"math"
	"testing"

	"oilgas-portfolio/internal/wells"
)

func names(as []AssetAggregate) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.Name)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAnalyzePortfolioSampleData(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, wells.SampleWells()))
	got := pa.AnalyzePortfolio()

	if got.TotalWells != 10 {
		t.Fatalf("active wells = %d, want 10", got.TotalWells)
	}
	if math.Abs(got.TotalNPV-158.3) > 1e-9 {
		t.Fatalf("total NPV = %v, want 158.3", got.TotalNPV)
	}
	if got.TotalProduction != 6185 {
		t.Fatalf("total production = %v, want 6185", got.TotalProduction)
	}
	if got.ProductionStats.Max != 1350 {
		t.Fatalf("production max = %v, want 1350", got.ProductionStats.Max)
	}
}

func TestAnalyzePortfolioNoActiveWells(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, []wells.Well{
		{ID: "D-1", Asset: "A", State: wells.Drilling{}, Economics: wells.Economics{IRR: 40}},
	}))
	got := pa.AnalyzePortfolio()
	if got.TotalWells != 0 || got.AvgIRR != 0 {
		t.Fatalf("expected zero portfolio, got %+v", got)
	}
	if math.IsNaN(got.AvgIRR) {
		t.Fatalf("avg IRR must not be NaN")
	}
}

func TestAnalyzeAssets(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, threeAssets()))
	as := pa.AnalyzeAssets()
	if !equalStrings(names(as), []string{"North", "South", "West"}) {
		t.Fatalf("asset order = %v", names(as))
	}
	n := as[0]
	if n.WellCount != 2 || n.ActiveWells != 2 || n.TotalProduction != 1600 || n.TotalNPV != 35 {
		t.Fatalf("unexpected North aggregate %+v", n)
	}
	if n.AvgIRR != 50 || n.AvgBreakEven != 31 || n.AvgProductionPerWell != 800 {
		t.Fatalf("unexpected North averages %+v", n)
	}
}

func TestRankByMetricPolarity(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, threeAssets()))

	byNPV, err := pa.RankByMetric("totalNPV")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"North", "West", "South"}; !equalStrings(names(byNPV), want) {
		t.Fatalf("totalNPV ranking = %v, want %v (descending)", names(byNPV), want)
	}

	byBE, err := pa.RankByMetric("breakEven")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"North", "South", "West"}; !equalStrings(names(byBE), want) {
		t.Fatalf("breakEven ranking = %v, want %v (ascending)", names(byBE), want)
	}
	for i := 1; i < len(byBE); i++ {
		if byBE[i].AvgBreakEven < byBE[i-1].AvgBreakEven {
			t.Fatalf("breakEven ranking not ascending: %v", names(byBE))
		}
	}
	for i := 1; i < len(byNPV); i++ {
		if byNPV[i].TotalNPV > byNPV[i-1].TotalNPV {
			t.Fatalf("totalNPV ranking not descending: %v", names(byNPV))
		}
	}
}

func TestRankByMetricUnknown(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, threeAssets()))
	if _, err := pa.RankByMetric("bogus"); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}

func TestRankByMetricStableTies(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, []wells.Well{
		activeWell("A-1", "A", 100, 10, 20, 30),
		activeWell("B-1", "B", 100, 10, 20, 30),
		activeWell("C-1", "C", 100, 10, 20, 30),
	}))
	got, _ := pa.RankByMetric("totalProduction")
	if !equalStrings(names(got), []string{"A", "B", "C"}) {
		t.Fatalf("ties should keep first-appearance order, got %v", names(got))
	}
}

func TestPerformanceScore(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, threeAssets()))

	score, ok := pa.PerformanceScore("North")
	if !ok {
		t.Fatal("North not found")
	}
	if math.Abs(score-100) > 1e-9 {
		t.Fatalf("North score = %v, want 100", score)
	}

	west, _ := pa.PerformanceScore("West")
	if west <= 0 || west >= 100 {
		t.Fatalf("West score out of range: %v", west)
	}

	if _, ok := pa.PerformanceScore("Nowhere"); ok {
		t.Fatal("expected unknown asset to report ok=false")
	}
}

func TestPerformanceScoreIdenticalBreakEven(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, []wells.Well{
		activeWell("A-1", "A", 200, 10, 20, 35),
		activeWell("B-1", "B", 100, 5, 10, 35),
	}))
	for name, s := range pa.PerformanceScores() {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			t.Fatalf("score for %s not finite: %v", name, s)
		}
	}
	a, _ := pa.PerformanceScore("A")
	if math.Abs(a-100) > 1e-9 {
		t.Fatalf("A score = %v, want 100", a)
	}
}

func TestCapitalEfficiencySorted(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, wells.SampleWells()))
	ce := pa.CapitalEfficiency()
	if len(ce) != 10 {
		t.Fatalf("expected 10 active wells with cost & EUR, got %d", len(ce))
	}
	for i := 1; i < len(ce); i++ {
		if ce[i].ROIRatio > ce[i-1].ROIRatio {
			t.Fatalf("not sorted by ROI at %d", i)
		}
	}
	if ce[0].WellID != "W-007" {
		t.Fatalf("best ROI well = %s, want W-007", ce[0].WellID)
	}
}

func TestDrillingPerformance(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, wells.SampleWells()))
	d := pa.DrillingPerformance()
	if d.WellCount != 12 {
		t.Fatalf("well count = %d, want 12", d.WellCount)
	}
	// IP30 dirata-rata hanya atas sumur ber-IP30 (11 sumur)
	var sum float64
	for _, w := range wells.SampleWells() {
		sum += w.IP30()
	}
	if math.Abs(d.AvgIP30-sum/11) > 1e-9 {
		t.Fatalf("avg IP30 = %v, want %v", d.AvgIP30, sum/11)
	}
}

func TestCompletionDesign(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, wells.SampleWells()))
	got := pa.CompletionDesign()
	counts := map[string]int{}
	for _, c := range got {
		counts[c.Type] = c.Count
	}
	// W-010 (Hybrid, Drilling) tidak punya IP30
	if counts["Slickwater"] != 6 || counts["Hybrid"] != 4 || counts["Gel"] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestTypeCurvesNormalized(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, wells.SampleWells()))
	curves := pa.TypeCurves(2023, "")
	if len(curves) != 4 {
		t.Fatalf("expected 4 wells of vintage 2023, got %d", len(curves))
	}
	for _, c := range curves {
		if len(c.Normalized) != wells.DefaultHistoryMonths {
			t.Fatalf("%s: %d points", c.WellID, len(c.Normalized))
		}
		first := c.Normalized[0].NormalizedRate
		if first < 94 || first > 106 {
			t.Fatalf("%s: first month should be ~100%% of IP30, got %v", c.WellID, first)
		}
	}
}

func TestTopAndUnderperforming(t *testing.T) {
	pa := NewPortfolioAnalyzer(newRepo(t, wells.SampleWells()))
	top := pa.TopPerforming(3)
	if len(top) != 3 || top[0].Well.ID != "W-007" {
		t.Fatalf("unexpected top performers %+v", top)
	}
	under := pa.Underperforming(1)
	if len(under) != 1 || under[0].Well.ID != "W-003" {
		t.Fatalf("unexpected underperformer %+v", under)
	}
	prod := pa.TopProducing(2)
	if prod[0].ID != "W-007" || prod[1].ID != "W-008" {
		t.Fatalf("unexpected top producers %s, %s", prod[0].ID, prod[1].ID)
	}
}

func TestPerformanceScoreNegativeNPV(t *testing.T) {
	cases := map[string][]wells.Well{
		"all negative": {
			activeWell("A-1", "A", 500, -1, 20, 40),
			activeWell("B-1", "B", 500, -4, 20, 50),
		},
		"mixed sign": {
			activeWell("A-1", "A", 500, 6, 20, 40),
			activeWell("B-1", "B", 500, -3, 20, 50),
			activeWell("C-1", "C", 400, 1, 25, 45),
		},
	}
	for name, ws := range cases {
		t.Run(name, func(t *testing.T) {
			pa := NewPortfolioAnalyzer(newRepo(t, ws))
			scores := pa.PerformanceScores()
			for asset, s := range scores {
				if s < 0 || s > 100 || math.IsNaN(s) {
					t.Fatalf("score %s = %.2f outside [0,100]", asset, s)
				}
			}
			if scores["A"] <= scores["B"] {
				t.Fatalf("A (better NPV & break-even) should outrank B: %v", scores)
			}
		})
	}
}
