package mysql

import (
	"database/sql"
	"testing"
	"time"

	"oilgas-portfolio/internal/wells"
)

func TestPlaceholders(t *testing.T) {
	cases := map[int]string{0: "", 1: "?", 3: "?,?,?"}
	for n, want := range cases {
		if got := placeholders(n); got != want {
			t.Errorf("placeholders(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestWellRowNullsBecomeZero(t *testing.T) {
	row := WellRow{
		ID:     "W-1",
		Name:   "Bakken 1H",
		Asset:  "Bakken",
		Status: sql.NullString{String: "Active", Valid: true},
		IP30:   sql.NullFloat64{Float64: 980, Valid: true},
	}
	w := row.ToWell()
	if w.Status() != wells.StatusActive || w.IP30() != 980 {
		t.Fatalf("status/ip30 not mapped: %+v", w)
	}
	if w.WellCost != 0 || w.Economics.EUR != 0 || !w.SpudDate.IsZero() {
		t.Fatalf("NULL columns should map to zero values: %+v", w)
	}
}

func TestWellRowDrillingHasNoProduction(t *testing.T) {
	row := WellRow{
		ID:     "W-2",
		Status: sql.NullString{String: "Drilling", Valid: true},
		IP30:   sql.NullFloat64{Float64: 500, Valid: true},
	}
	if got := row.ToWell().IP30(); got != 0 {
		t.Fatalf("drilling well IP30 = %v, want 0", got)
	}
}

func TestProdRowToRecord(t *testing.T) {
	d := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	rec := ProdRow{
		WellID:   "W-1",
		Month:    3,
		ProdDate: sql.NullTime{Time: d, Valid: true},
		Rate:     812,
		WaterCut: sql.NullFloat64{Float64: 16, Valid: true},
	}.ToRecord()

	if rec.Month != 3 || rec.Rate != 812 || rec.Date != "2023-05-01" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.WaterCut == nil || *rec.WaterCut != 16 {
		t.Fatalf("water cut not mapped: %+v", rec.WaterCut)
	}
	if rec.GOR != nil {
		t.Fatalf("NULL gor should stay nil")
	}
}

func TestValueRows(t *testing.T) {
	cases := map[[2]int]string{{2, 0}: "", {1, 1}: "(?)", {2, 3}: "(?,?),(?,?),(?,?)"}
	for in, want := range cases {
		if got := valueRows(in[0], in[1]); got != want {
			t.Errorf("valueRows(%d, %d) = %q, want %q", in[0], in[1], got, want)
		}
	}
}
