// internal/services/scenario.go
// Skenario harga bear/base/bull: metrik portofolio & per-asset, perbandingan, sensitivitas

package services

import "oilgas-portfolio/internal/wells"

// HurdleRate: IRR minimum (%) agar sumur dianggap lolos.
const HurdleRate = 15.0

type ScenarioParams struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	OilPrice    float64 `json:"oil_price"`
	GasPrice    float64 `json:"gas_price"`
	Description string  `json:"description"`
}

var (
	Bear = ScenarioParams{Key: "bear", Name: "Bear Case", OilPrice: 50, GasPrice: 2.5, Description: "Low price environment"}
	Base = ScenarioParams{Key: "base", Name: "Base Case", OilPrice: 70, GasPrice: 3.5, Description: "Current market conditions"}
	Bull = ScenarioParams{Key: "bull", Name: "Bull Case", OilPrice: 90, GasPrice: 5.0, Description: "High price environment"}
)

// Scenario mencari skenario berdasarkan key; tidak dikenal -> Base (ok=false).
func Scenario(key string) (ScenarioParams, bool) {
	switch key {
	case "bear":
		return Bear, true
	case "base":
		return Base, true
	case "bull":
		return Bull, true
	}
	return Base, false
}

func Scenarios() []ScenarioParams { return []ScenarioParams{Bear, Base, Bull} }

type ScenarioEngine struct {
	Repo *wells.Repository
}

func NewScenarioEngine(repo *wells.Repository) *ScenarioEngine {
	return &ScenarioEngine{Repo: repo}
}

type ScenarioMetrics struct {
	TotalNPV           float64 `json:"total_npv"`
	AvgIRR             float64 `json:"avg_irr"`
	WellCount          int     `json:"well_count"`
	WellsAboveHurdle   int     `json:"wells_above_hurdle"`
	PercentAboveHurdle float64 `json:"percent_above_hurdle"`
}

type AssetScenario struct {
	Asset     string  `json:"asset"`
	NPV       float64 `json:"npv"`
	IRR       float64 `json:"irr"`
	WellCount int     `json:"well_count"`
}

// PortfolioMetrics atas SEMUA sumur (bukan hanya aktif). Tanpa sumur -> nol.
func (e *ScenarioEngine) PortfolioMetrics(oilPrice, gasPrice, discountRate float64) ScenarioMetrics {
	return scenarioMetrics(e.Repo.All(), oilPrice, gasPrice, discountRate)
}

func scenarioMetrics(ws []wells.Well, oilPrice, gasPrice, discountRate float64) ScenarioMetrics {
	m := ScenarioMetrics{WellCount: len(ws)}
	var irrSum float64
	for _, w := range ws {
		m.TotalNPV += ScenarioNPV(w, oilPrice, gasPrice, discountRate)
		irr := ScenarioIRR(w, oilPrice, gasPrice)
		irrSum += irr
		if irr >= HurdleRate {
			m.WellsAboveHurdle++
		}
	}
	if len(ws) > 0 {
		m.AvgIRR = irrSum / float64(len(ws))
		m.PercentAboveHurdle = float64(m.WellsAboveHurdle) / float64(len(ws)) * 100
	}
	return m
}

// AssetMetrics: NPV dijumlah, IRR dirata-rata per asset (urut kemunculan).
func (e *ScenarioEngine) AssetMetrics(oilPrice, gasPrice, discountRate float64) []AssetScenario {
	all := e.Repo.All()
	byAsset := map[string][]wells.Well{}
	for _, w := range all {
		byAsset[w.Asset] = append(byAsset[w.Asset], w)
	}

	assets := e.Repo.Assets()
	out := make([]AssetScenario, 0, len(assets))
	for _, a := range assets {
		m := scenarioMetrics(byAsset[a], oilPrice, gasPrice, discountRate)
		out = append(out, AssetScenario{Asset: a, NPV: m.TotalNPV, IRR: m.AvgIRR, WellCount: m.WellCount})
	}
	return out
}

type ScenarioResult struct {
	ScenarioParams
	Metrics ScenarioMetrics `json:"metrics"`
	Assets  []AssetScenario `json:"assets"`
}

type ScenarioComparison struct {
	Bear ScenarioResult `json:"bear"`
	Base ScenarioResult `json:"base"`
	Bull ScenarioResult `json:"bull"`
}

// Run menghitung satu skenario dengan diskonto default 10%.
func (e *ScenarioEngine) Run(p ScenarioParams) ScenarioResult {
	return ScenarioResult{
		ScenarioParams: p,
		Metrics:        e.PortfolioMetrics(p.OilPrice, p.GasPrice, DefaultDiscountRate),
		Assets:         e.AssetMetrics(p.OilPrice, p.GasPrice, DefaultDiscountRate),
	}
}

func (e *ScenarioEngine) CompareScenarios() ScenarioComparison {
	return ScenarioComparison{Bear: e.Run(Bear), Base: e.Run(Base), Bull: e.Run(Bull)}
}

type AssetSensitivity struct {
	Asset       string  `json:"asset"`
	BearNPV     float64 `json:"bear_npv"`
	BaseNPV     float64 `json:"base_npv"`
	BullNPV     float64 `json:"bull_npv"`
	Sensitivity float64 `json:"sensitivity"` // (bull - bear) / base * 100
}

// Sensitivity per asset dari hasil perbandingan. Base NPV 0 -> sensitivitas 0.
func (c ScenarioComparison) Sensitivity() []AssetSensitivity {
	bear := indexAssets(c.Bear.Assets)
	bull := indexAssets(c.Bull.Assets)

	out := make([]AssetSensitivity, 0, len(c.Base.Assets))
	for _, b := range c.Base.Assets {
		s := AssetSensitivity{
			Asset:   b.Asset,
			BearNPV: bear[b.Asset].NPV,
			BaseNPV: b.NPV,
			BullNPV: bull[b.Asset].NPV,
		}
		if s.BaseNPV != 0 {
			s.Sensitivity = (s.BullNPV - s.BearNPV) / s.BaseNPV * 100
		}
		out = append(out, s)
	}
	return out
}

func indexAssets(as []AssetScenario) map[string]AssetScenario {
	m := make(map[string]AssetScenario, len(as))
	for _, a := range as {
		m[a.Asset] = a
	}
	return m
}
