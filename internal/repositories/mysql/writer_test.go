package mysql

import (
	"strings"
	"testing"

	"oilgas-portfolio/internal/wells"
)

func TestUpsertStmtSkipsKeyColumns(t *testing.T) {
	q := upsertStmt("prod_monthly", prodColumns, map[string]bool{"well_id": true, "month": true}, 2)
	if !strings.HasPrefix(q, "INSERT INTO prod_monthly(well_id, month, prod_date,") {
		t.Fatalf("unexpected insert head: %s", q)
	}
	if strings.Count(q, "(?,?,?,?,?,?,?,?)") != 2 {
		t.Fatalf("expected 2 value groups: %s", q)
	}
	if strings.Contains(q, "well_id=VALUES") || strings.Contains(q, "month=VALUES") {
		t.Fatalf("key columns must not be updated: %s", q)
	}
	if !strings.Contains(q, "oil_rate=VALUES(oil_rate)") {
		t.Fatalf("missing update clause: %s", q)
	}
}

func TestWellArgsMatchColumns(t *testing.T) {
	cols := strings.Split(wellColumns, ",")
	for _, w := range wells.SampleWells() {
		args := wellArgs(w)
		if len(args) != len(cols) {
			t.Fatalf("%s: %d args for %d columns", w.ID, len(args), len(cols))
		}
	}
	drilling := wells.SampleWells()[9]
	args := wellArgs(drilling)
	if args[5] != "Drilling" || args[18] != nil {
		t.Fatalf("drilling well should carry status and NULL ip30: %v", args)
	}
}

func TestProdArgsRoundTrip(t *testing.T) {
	wc := 12.5
	rec := wells.ProductionRecord{Month: 3, Date: "2024-03-01", Rate: 800, Forecast: 790, Cumulative: 72000, WaterCut: &wc}
	args := prodArgs("W-1", rec)

	row := ProdRow{WellID: args[0].(string), Month: args[1].(int), Rate: args[3].(float64)}
	if row.ToRecord().Rate != 800 || args[6] != 12.5 || args[7] != nil {
		t.Fatalf("unexpected args: %v", args)
	}
}
