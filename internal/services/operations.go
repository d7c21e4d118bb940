// internal/services/operations.go
// Analitik operasional: drilling, desain completion, type curve, proppant, efisiensi kapital, ranking sumur

package services

import (
	"sort"

	"oilgas-portfolio/internal/wells"
)

type DrillingPerformance struct {
	WellCount        int     `json:"well_count"`
	AvgDrillingDays  float64 `json:"avg_drilling_days"`
	AvgTotalDepth    float64 `json:"avg_total_depth"`
	AvgLateralLength float64 `json:"avg_lateral_length"`
	AvgWellCost      float64 `json:"avg_well_cost"`
	AvgCostPerFoot   float64 `json:"avg_cost_per_foot"`
	AvgIP30          float64 `json:"avg_ip30"`
}

// DrillingPerformance: rata-rata atas sumur yang punya drilling days & total depth.
func (a *PortfolioAnalyzer) DrillingPerformance() DrillingPerformance {
	var days, depth, lateral, cost, perFoot, ip30 []float64
	for _, w := range a.Repo.All() {
		if w.DrillingDays == 0 || w.TotalDepth == 0 {
			continue
		}
		days = append(days, w.DrillingDays)
		depth = append(depth, w.TotalDepth)
		lateral = append(lateral, w.LateralLength)
		cost = append(cost, w.WellCost)
		perFoot = append(perFoot, w.WellCost*1_000_000/w.TotalDepth)
		if w.IP30() != 0 {
			ip30 = append(ip30, w.IP30())
		}
	}
	return DrillingPerformance{
		WellCount:        len(days),
		AvgDrillingDays:  mean(days),
		AvgTotalDepth:    mean(depth),
		AvgLateralLength: mean(lateral),
		AvgWellCost:      mean(cost),
		AvgCostPerFoot:   mean(perFoot),
		AvgIP30:          mean(ip30),
	}
}

type CompletionSummary struct {
	Type        string  `json:"type"`
	Count       int     `json:"count"`
	AvgIP30     float64 `json:"avg_ip30"`
	AvgEUR      float64 `json:"avg_eur"`
	AvgProppant float64 `json:"avg_proppant"`
	AvgCost     float64 `json:"avg_cost"`
	AvgNPV      float64 `json:"avg_npv"`
}

// CompletionDesign mengelompokkan sumur ber-IP30 per completion type (urut kemunculan).
func (a *PortfolioAnalyzer) CompletionDesign() []CompletionSummary {
	type acc struct {
		ip30, eur, prop, cost, npv []float64
	}
	var order []string
	groups := map[string]*acc{}
	for _, w := range a.Repo.All() {
		if w.CompletionType == "" || w.IP30() == 0 {
			continue
		}
		g, ok := groups[w.CompletionType]
		if !ok {
			g = &acc{}
			groups[w.CompletionType] = g
			order = append(order, w.CompletionType)
		}
		g.ip30 = append(g.ip30, w.IP30())
		g.eur = append(g.eur, w.Economics.EUR)
		g.prop = append(g.prop, w.ProppantLoaded)
		g.cost = append(g.cost, w.WellCost)
		g.npv = append(g.npv, w.Economics.NPV)
	}

	out := make([]CompletionSummary, 0, len(order))
	for _, t := range order {
		g := groups[t]
		out = append(out, CompletionSummary{
			Type:        t,
			Count:       len(g.ip30),
			AvgIP30:     mean(g.ip30),
			AvgEUR:      mean(g.eur),
			AvgProppant: mean(g.prop),
			AvgCost:     mean(g.cost),
			AvgNPV:      mean(g.npv),
		})
	}
	return out
}

type NormalizedPoint struct {
	Month          int     `json:"month"`
	Rate           float64 `json:"rate"`
	NormalizedRate float64 `json:"normalized_rate"` // % dari IP30
}

type TypeCurve struct {
	WellID         string            `json:"well_id"`
	WellName       string            `json:"well_name"`
	Vintage        int               `json:"vintage"`
	CompletionType string            `json:"completion_type"`
	Normalized     []NormalizedPoint `json:"normalized"`
}

// TypeCurves: history dinormalisasi terhadap IP30. vintage 0 / completionType "" atau "all" = semua.
func (a *PortfolioAnalyzer) TypeCurves(vintage int, completionType string) []TypeCurve {
	f := wells.Filter{Vintage: vintage, CompletionType: completionType}
	var out []TypeCurve
	for _, w := range a.Repo.List(f) {
		ip := w.IP30()
		if ip == 0 {
			continue
		}
		hist := a.Repo.History(w.ID, 0)
		pts := make([]NormalizedPoint, 0, len(hist))
		for _, h := range hist {
			pts = append(pts, NormalizedPoint{Month: h.Month, Rate: h.Rate, NormalizedRate: h.Rate / ip * 100})
		}
		out = append(out, TypeCurve{
			WellID:         w.ID,
			WellName:       w.Name,
			Vintage:        w.Vintage,
			CompletionType: w.CompletionType,
			Normalized:     pts,
		})
	}
	return out
}

type ProppantPoint struct {
	WellID          string  `json:"well_id"`
	WellName        string  `json:"well_name"`
	Proppant        float64 `json:"proppant"`
	CumProduction   float64 `json:"cum_production"`
	EUR             float64 `json:"eur"`
	LateralLength   float64 `json:"lateral_length"`
	ProppantPerFoot float64 `json:"proppant_per_foot"` // klbs per 1000 ft
}

type ProppantAnalysis struct {
	Points []ProppantPoint `json:"points"`
	// korelasi Pearson proppant vs EUR (0 bila titik < 2)
	EURCorrelation float64 `json:"eur_correlation"`
}

// ProppantVsProduction atas sumur yang punya proppant & produksi saat ini.
// Cum production = jumlah kolom cumulative di history (sesuai dashboard lama).
func (a *PortfolioAnalyzer) ProppantVsProduction() ProppantAnalysis {
	var out ProppantAnalysis
	var xs, ys []float64
	for _, w := range a.Repo.All() {
		if w.ProppantLoaded == 0 || w.CurrentProduction() == 0 {
			continue
		}
		var cum float64
		for _, h := range a.Repo.History(w.ID, 0) {
			cum += h.Cumulative
		}
		var perFoot float64
		if w.LateralLength != 0 {
			perFoot = w.ProppantLoaded / (w.LateralLength / 1000)
		}
		out.Points = append(out.Points, ProppantPoint{
			WellID:          w.ID,
			WellName:        w.Name,
			Proppant:        w.ProppantLoaded,
			CumProduction:   cum,
			EUR:             w.Economics.EUR,
			LateralLength:   w.LateralLength,
			ProppantPerFoot: perFoot,
		})
		xs = append(xs, w.ProppantLoaded)
		ys = append(ys, w.Economics.EUR)
	}
	if r, err := PearsonCorrelation(xs, ys); err == nil {
		out.EURCorrelation = r
	}
	return out
}

type CapitalEfficiency struct {
	WellID      string  `json:"well_id"`
	WellName    string  `json:"well_name"`
	Asset       string  `json:"asset"`
	Capex       float64 `json:"capex"`
	EUR         float64 `json:"eur"`
	CapexPerBOE float64 `json:"capex_per_boe"`
	NPV         float64 `json:"npv"`
	IRR         float64 `json:"irr"`
	ROIRatio    float64 `json:"roi_ratio"`
}

// CapitalEfficiency: sumur aktif dengan cost & EUR, urut ROI (npv/capex) menurun.
func (a *PortfolioAnalyzer) CapitalEfficiency() []CapitalEfficiency {
	var out []CapitalEfficiency
	for _, w := range a.Repo.Active() {
		if w.WellCost == 0 || w.Economics.EUR == 0 {
			continue
		}
		out = append(out, CapitalEfficiency{
			WellID:      w.ID,
			WellName:    w.Name,
			Asset:       w.Asset,
			Capex:       w.WellCost,
			EUR:         w.Economics.EUR,
			CapexPerBOE: w.WellCost * 1000 / w.Economics.EUR,
			NPV:         w.Economics.NPV,
			IRR:         w.Economics.IRR,
			ROIRatio:    w.Economics.NPV / w.WellCost,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ROIRatio > out[j].ROIRatio })
	return out
}

type WellPerformance struct {
	Well             wells.Well `json:"well"`
	PerformanceRatio float64    `json:"performance_ratio"` // current / forecast
}

func (a *PortfolioAnalyzer) performance() []WellPerformance {
	active := a.Repo.Active()
	out := make([]WellPerformance, 0, len(active))
	for _, w := range active {
		var ratio float64
		if w.Forecast() > 0 {
			ratio = w.CurrentProduction() / w.Forecast()
		}
		out = append(out, WellPerformance{Well: w, PerformanceRatio: ratio})
	}
	return out
}

// TopPerforming: rasio aktual/forecast tertinggi.
func (a *PortfolioAnalyzer) TopPerforming(limit int) []WellPerformance {
	p := a.performance()
	sort.SliceStable(p, func(i, j int) bool { return p[i].PerformanceRatio > p[j].PerformanceRatio })
	return head(p, limit)
}

// Underperforming: rasio aktual/forecast terendah.
func (a *PortfolioAnalyzer) Underperforming(limit int) []WellPerformance {
	p := a.performance()
	sort.SliceStable(p, func(i, j int) bool { return p[i].PerformanceRatio < p[j].PerformanceRatio })
	return head(p, limit)
}

// TopProducing: produksi saat ini tertinggi.
func (a *PortfolioAnalyzer) TopProducing(limit int) []wells.Well {
	ws := a.Repo.Active()
	sort.SliceStable(ws, func(i, j int) bool { return ws[i].CurrentProduction() > ws[j].CurrentProduction() })
	return head(ws, limit)
}

func head[T any](s []T, n int) []T {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[:n]
}
