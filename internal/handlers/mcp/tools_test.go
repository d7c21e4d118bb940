package mcp

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"oilgas-portfolio/internal/wells"
)

func newTools(t *testing.T) *Tools {
	t.Helper()
	repo := wells.NewRepository(wells.WithSeed(3))
	if err := repo.Replace(wells.SampleWells()); err != nil {
		t.Fatal(err)
	}
	return NewTools(repo)
}

func call(t *testing.T, h http.HandlerFunc, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/mcp/internal/x", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return rec.Code, out
}

func TestCalcNPVZeroRateIsSum(t *testing.T) {
	code, out := call(t, CalcNPVHandler, `{"cash_flows":[100,100,100],"discount_rate":0}`)
	if code != http.StatusOK || out["npv"] != float64(300) {
		t.Fatalf("code=%d out=%v", code, out)
	}
}

func TestCalcIRRReportsConvergence(t *testing.T) {
	code, out := call(t, CalcIRRHandler, `{"cash_flows":[-100,60,60]}`)
	if code != http.StatusOK {
		t.Fatalf("code=%d out=%v", code, out)
	}
	rate := out["rate"].(float64)
	if rate < 13.0 || rate > 13.3 || out["converged"] != true {
		t.Fatalf("unexpected irr result: %v", out)
	}
}

func TestCalcRequiresCashFlows(t *testing.T) {
	code, out := call(t, CalcNPVHandler, `{}`)
	if code != http.StatusBadRequest || out["error"] != "bad_input" {
		t.Fatalf("code=%d out=%v", code, out)
	}
}

func TestRankAssetsPolarity(t *testing.T) {
	tl := newTools(t)
	_, desc := call(t, tl.RankAssetsHandler, `{"metric":"totalNPV"}`)
	_, asc := call(t, tl.RankAssetsHandler, `{"metric":"breakEven"}`)

	npv := desc["ranking"].([]any)
	for i := 1; i < len(npv); i++ {
		if npv[i-1].(map[string]any)["total_npv"].(float64) < npv[i].(map[string]any)["total_npv"].(float64) {
			t.Fatalf("totalNPV ranking not descending: %v", npv)
		}
	}
	be := asc["ranking"].([]any)
	for i := 1; i < len(be); i++ {
		if be[i-1].(map[string]any)["avg_break_even"].(float64) > be[i].(map[string]any)["avg_break_even"].(float64) {
			t.Fatalf("breakEven ranking not ascending: %v", be)
		}
	}
	if asc["ascending"] != true || desc["ascending"] != false {
		t.Fatalf("ascending flags wrong: %v / %v", asc["ascending"], desc["ascending"])
	}
}

func TestRankAssetsUnknownMetric(t *testing.T) {
	code, _ := call(t, newTools(t).RankAssetsHandler, `{"metric":"bogus"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
}

func TestWellToolsNotFound(t *testing.T) {
	tl := newTools(t)
	for name, h := range map[string]http.HandlerFunc{
		"production": tl.GetProductionHandler,
		"forecast":   tl.ForecastWellHandler,
		"economics":  tl.WellEconomicsHandler,
		"anomalies":  tl.DetectAnomaliesHandler,
	} {
		if code, _ := call(t, h, `{"well_id":"W-404"}`); code != http.StatusNotFound {
			t.Errorf("%s: code = %d, want 404", name, code)
		}
		if code, _ := call(t, h, `{}`); code != http.StatusBadRequest {
			t.Errorf("%s without well_id: code = %d, want 400", name, code)
		}
	}
}

func TestForecastWell(t *testing.T) {
	code, out := call(t, newTools(t).ForecastWellHandler, `{"well_id":"W-001"}`)
	if code != http.StatusOK {
		t.Fatalf("code=%d out=%v", code, out)
	}
	fc := out["forecast"].([]any)
	if len(fc) != 12 {
		t.Fatalf("forecast points = %d, want 12", len(fc))
	}
	first := fc[0].(map[string]any)
	if first["confidence"] != float64(95) || first["month"] != float64(24) {
		t.Fatalf("unexpected first point: %v", first)
	}
}

func TestWellEconomicsBreakEven(t *testing.T) {
	code, out := call(t, newTools(t).WellEconomicsHandler, `{"well_id":"W-001"}`)
	if code != http.StatusOK {
		t.Fatalf("code=%d out=%v", code, out)
	}
	want := 8.5*1000/580 + 15
	if got := out["break_even"].(float64); math.Abs(got-want) > 1e-9 {
		t.Fatalf("break_even = %v, want %v", got, want)
	}
}

func TestDrillingWellHasNoHistory(t *testing.T) {
	tl := newTools(t)
	code, out := call(t, tl.GetProductionHandler, `{"well_id":"W-010"}`)
	if code != http.StatusOK || len(out["history"].([]any)) != 0 {
		t.Fatalf("code=%d out=%v", code, out)
	}
	if code, _ := call(t, tl.DetectAnomaliesHandler, `{"well_id":"W-010"}`); code != http.StatusBadRequest {
		t.Fatalf("anomalies on empty history: code = %d, want 400", code)
	}
}

func TestRunScenarioLiteralPrices(t *testing.T) {
	tl := newTools(t)
	code, out := call(t, tl.RunScenarioHandler, `{"scenario":"base"}`)
	if code != http.StatusOK || out["oil_price"] != float64(70) || out["gas_price"] != 3.5 {
		t.Fatalf("code=%d out=%v", code, out)
	}
	if code, _ := call(t, tl.RunScenarioHandler, `{"scenario":"moon"}`); code != http.StatusBadRequest {
		t.Fatalf("unknown scenario code = %d, want 400", code)
	}
}

func TestCalcNPVRejectsRateAtOrBelowMinus100(t *testing.T) {
	for _, rate := range []string{"-100", "-150"} {
		code, out := call(t, CalcNPVHandler, `{"cash_flows":[-100,60,60],"discount_rate":`+rate+`}`)
		if code != http.StatusBadRequest || out["error"] != "bad_input" {
			t.Fatalf("rate %s: code=%d out=%v", rate, code, out)
		}
	}
}

func TestWriteJSONNonFiniteIsInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]any{"npv": math.Inf(1)})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", rec.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil || out["error"] != "internal" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestCalcIRRCapsIterations(t *testing.T) {
	code, out := call(t, CalcIRRHandler, `{"cash_flows":[-100,60,60],"tolerance":1e-300,"max_iterations":1000000000}`)
	if code != http.StatusOK {
		t.Fatalf("code=%d out=%v", code, out)
	}
	if it := out["iterations"].(float64); it < 1 || it > maxIRRIterations {
		t.Fatalf("iterations = %v, want within [1,%d]", it, maxIRRIterations)
	}
}
