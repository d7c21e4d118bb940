// internal/services/portfolio.go
// Agregasi portofolio (sumur aktif) dan per-asset: total, rata-rata, ranking, skor performa

package services

import (
	"errors"
	"fmt"
	"sort"

	"oilgas-portfolio/internal/wells"
)

var ErrUnknownMetric = errors.New("unknown ranking metric")

type PortfolioAnalyzer struct {
	Repo *wells.Repository
}

func NewPortfolioAnalyzer(repo *wells.Repository) *PortfolioAnalyzer {
	return &PortfolioAnalyzer{Repo: repo}
}

type PortfolioAnalysis struct {
	TotalWells      int     `json:"total_wells"`
	TotalProduction float64 `json:"total_production"`
	TotalNPV        float64 `json:"total_npv"`
	AvgIRR          float64 `json:"avg_irr"`
	TotalEUR        float64 `json:"total_eur"`
	TotalCapex      float64 `json:"total_capex"`

	ProductionStats Stats `json:"production_stats"`
	NPVStats        Stats `json:"npv_stats"`
	IRRStats        Stats `json:"irr_stats"`
	BreakEvenStats  Stats `json:"break_even_stats"`
}

// AnalyzePortfolio menghitung metrik atas sumur berstatus Active.
// Tanpa sumur aktif, rata-rata bernilai 0.
func (a *PortfolioAnalyzer) AnalyzePortfolio() PortfolioAnalysis {
	ws := a.Repo.Active()

	var out PortfolioAnalysis
	out.TotalWells = len(ws)

	prod := make([]float64, 0, len(ws))
	npv := make([]float64, 0, len(ws))
	irr := make([]float64, 0, len(ws))
	be := make([]float64, 0, len(ws))
	for _, w := range ws {
		out.TotalProduction += w.CurrentProduction()
		out.TotalNPV += w.Economics.NPV
		out.TotalEUR += w.Economics.EUR
		out.TotalCapex += w.WellCost

		prod = append(prod, w.CurrentProduction())
		npv = append(npv, w.Economics.NPV)
		irr = append(irr, w.Economics.IRR)
		be = append(be, w.Economics.BreakEven)
	}
	out.AvgIRR = mean(irr)

	out.ProductionStats = Describe(prod)
	out.NPVStats = Describe(npv)
	out.IRRStats = Describe(irr)
	out.BreakEvenStats = Describe(be)
	return out
}

type AssetAggregate struct {
	Name                 string  `json:"name"`
	WellCount            int     `json:"well_count"`
	ActiveWells          int     `json:"active_wells"`
	TotalProduction      float64 `json:"total_production"`
	TotalNPV             float64 `json:"total_npv"`
	AvgIRR               float64 `json:"avg_irr"`
	AvgBreakEven         float64 `json:"avg_break_even"`
	TotalEUR             float64 `json:"total_eur"`
	TotalCapex           float64 `json:"total_capex"`
	AvgProductionPerWell float64 `json:"avg_production_per_well"`
	AvgNPVPerWell        float64 `json:"avg_npv_per_well"`
	AvgDrillingDays      float64 `json:"avg_drilling_days"`
	AvgWellCost          float64 `json:"avg_well_cost"`
	AvgIP30              float64 `json:"avg_ip30"`
}

// AnalyzeAssets: satu agregat per asset, urut kemunculan pertama.
func (a *PortfolioAnalyzer) AnalyzeAssets() []AssetAggregate {
	all := a.Repo.All()
	order := a.Repo.Assets()

	byAsset := make(map[string][]wells.Well, len(order))
	for _, w := range all {
		byAsset[w.Asset] = append(byAsset[w.Asset], w)
	}

	out := make([]AssetAggregate, 0, len(order))
	for _, name := range order {
		out = append(out, aggregateAsset(name, byAsset[name]))
	}
	return out
}

// Asset mengembalikan agregat satu asset.
func (a *PortfolioAnalyzer) Asset(name string) (AssetAggregate, bool) {
	for _, ag := range a.AnalyzeAssets() {
		if ag.Name == name {
			return ag, true
		}
	}
	return AssetAggregate{}, false
}

func aggregateAsset(name string, ws []wells.Well) AssetAggregate {
	ag := AssetAggregate{Name: name, WellCount: len(ws)}

	var irr, be, npv, drill, cost, ip30, activeProd []float64
	for _, w := range ws {
		if w.IsActive() {
			ag.ActiveWells++
			ag.TotalProduction += w.CurrentProduction()
			activeProd = append(activeProd, w.CurrentProduction())
		}
		ag.TotalNPV += w.Economics.NPV
		ag.TotalEUR += w.Economics.EUR
		ag.TotalCapex += w.WellCost

		irr = append(irr, w.Economics.IRR)
		be = append(be, w.Economics.BreakEven)
		npv = append(npv, w.Economics.NPV)
		if w.DrillingDays != 0 {
			drill = append(drill, w.DrillingDays)
		}
		if w.WellCost != 0 {
			cost = append(cost, w.WellCost)
		}
		if w.IP30() != 0 {
			ip30 = append(ip30, w.IP30())
		}
	}
	ag.AvgIRR = mean(irr)
	ag.AvgBreakEven = mean(be)
	ag.AvgNPVPerWell = mean(npv)
	ag.AvgProductionPerWell = mean(activeProd)
	ag.AvgDrillingDays = mean(drill)
	ag.AvgWellCost = mean(cost)
	ag.AvgIP30 = mean(ip30)
	return ag
}

// metricValue memetakan nama metrik ke field agregat.
func metricValue(ag AssetAggregate, metric string) (float64, bool) {
	switch metric {
	case "totalNPV":
		return ag.TotalNPV, true
	case "totalProduction":
		return ag.TotalProduction, true
	case "avgIRR":
		return ag.AvgIRR, true
	case "breakEven", "avgBreakEven":
		return ag.AvgBreakEven, true
	case "totalEUR":
		return ag.TotalEUR, true
	case "totalCapex":
		return ag.TotalCapex, true
	case "wellCount":
		return float64(ag.WellCount), true
	case "activeWells":
		return float64(ag.ActiveWells), true
	case "avgProductionPerWell":
		return ag.AvgProductionPerWell, true
	case "avgNPVPerWell":
		return ag.AvgNPVPerWell, true
	case "avgDrillingDays":
		return ag.AvgDrillingDays, true
	case "avgWellCost":
		return ag.AvgWellCost, true
	case "avgIP30":
		return ag.AvgIP30, true
	}
	return 0, false
}

// RankByMetric mengurutkan asset menurun, kecuali breakEven (lebih rendah lebih baik).
// Nilai sama mempertahankan urutan kemunculan asset.
func (a *PortfolioAnalyzer) RankByMetric(metric string) ([]AssetAggregate, error) {
	if _, ok := metricValue(AssetAggregate{}, metric); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}
	ranked := a.AnalyzeAssets()
	ascending := metric == "breakEven" || metric == "avgBreakEven"

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, _ := metricValue(ranked[i], metric)
		vj, _ := metricValue(ranked[j], metric)
		if ascending {
			return vi < vj
		}
		return vi > vj
	})
	return ranked, nil
}

// PerformanceScore: NPV 30%, IRR 25%, produksi 25%, break-even (dibalik) 20%.
// NPV/IRR/produksi dinormalisasi value/max (min-max bila ada nilai negatif);
// break-even min-max terbalik. max == 0 -> sub-skor 0; semua break-even sama -> 100.
func (a *PortfolioAnalyzer) PerformanceScore(asset string) (float64, bool) {
	all := a.AnalyzeAssets()
	idx := -1
	for i, ag := range all {
		if ag.Name == asset {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false
	}
	return performanceScore(all[idx], all), true
}

// PerformanceScores menghitung skor semua asset dalam satu snapshot.
func (a *PortfolioAnalyzer) PerformanceScores() map[string]float64 {
	all := a.AnalyzeAssets()
	out := make(map[string]float64, len(all))
	for _, ag := range all {
		out[ag.Name] = performanceScore(ag, all)
	}
	return out
}

func performanceScore(ag AssetAggregate, all []AssetAggregate) float64 {
	var npv, irr, prod, be bounds
	for i, x := range all {
		npv.add(i, x.TotalNPV)
		irr.add(i, x.AvgIRR)
		prod.add(i, x.TotalProduction)
		be.add(i, x.AvgBreakEven)
	}

	beScore := 100.0
	if be.max != be.min {
		beScore = (be.max - ag.AvgBreakEven) / (be.max - be.min) * 100
	}

	return npv.score(ag.TotalNPV)*0.30 +
		irr.score(ag.AvgIRR)*0.25 +
		prod.score(ag.TotalProduction)*0.25 +
		beScore*0.20
}

type bounds struct{ min, max float64 }

func (b *bounds) add(i int, v float64) {
	if i == 0 {
		b.min, b.max = v, v
		return
	}
	b.min = min(b.min, v)
	b.max = max(b.max, v)
}

// score: value/max bila semua nilai >= 0; ada nilai negatif -> min-max
// (semua sama -> 100). Hasil selalu di [0,100].
func (b bounds) score(v float64) float64 {
	if b.min < 0 {
		if b.max == b.min {
			return 100
		}
		return (v - b.min) / (b.max - b.min) * 100
	}
	if b.max == 0 {
		return 0
	}
	return v / b.max * 100
}
