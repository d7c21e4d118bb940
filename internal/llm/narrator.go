// internal/llm/narrator.go
// Narasi ringkas portofolio: LLM bila tersedia, fallback deterministik bila tidak

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"oilgas-portfolio/internal/services"
)

const narratorSystem = `You are a reservoir & economics analyst. Summarize the oil & gas portfolio
metrics you are given in 4-6 short sentences. Use only the numbers provided. Mention the
strongest and weakest asset, the price sensitivity and any IRR convergence caveat.`

// Brief adalah input narasi: snapshot metrik yang sudah dihitung engine.
type Brief struct {
	Portfolio   services.PortfolioAnalysis  `json:"portfolio"`
	Ranking     []services.AssetAggregate   `json:"ranking_by_npv"`
	Scores      map[string]float64          `json:"performance_scores"`
	Sensitivity []services.AssetSensitivity `json:"sensitivity"`
	Scenarios   services.ScenarioComparison `json:"scenarios"`
}

type Narrative struct {
	Text   string `json:"text"`
	Source string `json:"source"` // "llm" | "fallback"
	Model  string `json:"model,omitempty"`
	Error  string `json:"error,omitempty"`
}

type Narrator struct {
	Client Client // nil -> selalu fallback
}

// Narrate tidak pernah gagal: error LLM dicatat di Narrative.Error lalu fallback.
func (n *Narrator) Narrate(ctx context.Context, b Brief) Narrative {
	if n == nil || n.Client == nil {
		return Narrative{Text: Fallback(b), Source: "fallback"}
	}
	payload, err := json.Marshal(b)
	if err != nil {
		return Narrative{Text: Fallback(b), Source: "fallback", Error: err.Error()}
	}
	out, err := n.Client.Complete(ctx, narratorSystem, string(payload))
	if err != nil || strings.TrimSpace(out) == "" {
		nv := Narrative{Text: Fallback(b), Source: "fallback"}
		if err != nil {
			nv.Error = err.Error()
		}
		return nv
	}
	return Narrative{Text: out, Source: "llm", Model: n.Client.Model()}
}

// Fallback menyusun ringkasan dari angka saja (extractive).
func Fallback(b Brief) string {
	var sb strings.Builder
	p := b.Portfolio
	fmt.Fprintf(&sb, "%d active wells produce %.0f BOPD with total NPV $%.1fMM and average IRR %.1f%%.",
		p.TotalWells, p.TotalProduction, p.TotalNPV, p.AvgIRR)

	if len(b.Ranking) > 0 {
		top := b.Ranking[0]
		fmt.Fprintf(&sb, " %s leads with NPV $%.1fMM across %d wells.", top.Name, top.TotalNPV, top.WellCount)
		if len(b.Ranking) > 1 {
			last := b.Ranking[len(b.Ranking)-1]
			fmt.Fprintf(&sb, " %s trails at $%.1fMM.", last.Name, last.TotalNPV)
		}
	}

	bear, bull := b.Scenarios.Bear.Metrics, b.Scenarios.Bull.Metrics
	if bear.WellCount > 0 {
		fmt.Fprintf(&sb, " Scenario NPV ranges from $%.1fMM (bear) to $%.1fMM (bull); %.0f%% of wells clear the %.0f%% hurdle in the base case.",
			bear.TotalNPV, bull.TotalNPV, b.Scenarios.Base.Metrics.PercentAboveHurdle, services.HurdleRate)
	}

	var mostSensitive *services.AssetSensitivity
	for i := range b.Sensitivity {
		s := &b.Sensitivity[i]
		if mostSensitive == nil || s.Sensitivity > mostSensitive.Sensitivity {
			mostSensitive = s
		}
	}
	if mostSensitive != nil {
		fmt.Fprintf(&sb, " %s is the most price-sensitive asset (%.0f%% swing).", mostSensitive.Asset, mostSensitive.Sensitivity)
	}
	return sb.String()
}

// BuildBrief mengambil snapshot metrik dari analyzer & scenario engine.
func BuildBrief(pa *services.PortfolioAnalyzer, se *services.ScenarioEngine) Brief {
	ranking, _ := pa.RankByMetric("totalNPV")
	cmp := se.CompareScenarios()
	return Brief{
		Portfolio:   pa.AnalyzePortfolio(),
		Ranking:     ranking,
		Scores:      pa.PerformanceScores(),
		Sensitivity: cmp.Sensitivity(),
		Scenarios:   cmp,
	}
}
