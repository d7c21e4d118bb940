package importer

import (
	"errors"
	"strings"
	"testing"

	"oilgas-portfolio/internal/wells"
)

func TestImportMinimalRowDefaultsToZero(t *testing.T) {
	repo := wells.NewRepository(wells.WithSeed(1))
	csv := "id,name,asset,status\nW-100,Test 1H,Eagle Ford,Active\n"

	ws, err := ImportCSV(repo, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCSV() error: %v", err)
	}
	if len(ws) != 1 {
		t.Fatalf("got %d wells, want 1", len(ws))
	}
	w, err := repo.Get("W-100")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if w.Name != "Test 1H" || w.Asset != "Eagle Ford" || w.Status() != wells.StatusActive {
		t.Fatalf("identity fields not imported: %+v", w)
	}
	if w.IP30() != 0 || w.WellCost != 0 || w.Vintage != 0 || w.TotalDepth != 0 {
		t.Fatalf("numeric fields should default to 0: %+v", w)
	}
	if w.Economics != (wells.Economics{}) {
		t.Fatalf("economics should be zero: %+v", w.Economics)
	}
	if h := repo.History("W-100", 0); len(h) != 0 {
		t.Fatalf("expected empty history for zero ip30, got %d records", len(h))
	}
}

func TestParseCSVQuotedCommasAndNumbers(t *testing.T) {
	csv := strings.Join([]string{
		`id,name,asset,status,ip30,wellCost,eur,vintage,completionType,ip90,notes`,
		`W-1,"Bakken 3H, North",Bakken,Active,980,8.8,480,2021,Slickwater,700,"has, commas"`,
		``,
		`W-2,Permian 2H,Permian Basin,Drilling,abc,9.2,,2023,Hybrid,,`,
	}, "\n")

	ws, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV() error: %v", err)
	}
	if len(ws) != 2 {
		t.Fatalf("got %d wells, want 2 (blank line skipped)", len(ws))
	}

	w1 := ws[0]
	if w1.Name != "Bakken 3H, North" {
		t.Fatalf("quoted name = %q", w1.Name)
	}
	if w1.IP30() != 980 || w1.WellCost != 8.8 || w1.Economics.EUR != 480 || w1.Vintage != 2021 {
		t.Fatalf("numeric parse wrong: %+v", w1)
	}
	if w1.Metrics["ip90"] != 700 {
		t.Fatalf("ip90 metric = %v, want 700", w1.Metrics["ip90"])
	}
	if w1.Extra["notes"] != "has, commas" {
		t.Fatalf("free text column = %q", w1.Extra["notes"])
	}

	w2 := ws[1]
	if w2.Status() != wells.StatusDrilling || w2.IP30() != 0 {
		t.Fatalf("drilling well should carry no ip30: %+v", w2)
	}
	if w2.Economics.EUR != 0 {
		t.Fatalf("blank eur should be 0, got %v", w2.Economics.EUR)
	}
}

func TestParseCSVEmpty(t *testing.T) {
	for name, in := range map[string]string{
		"nothing":     "",
		"header only": "id,name,asset\n",
		"blank rows":  "id,name\n,\n\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(in))
			if !errors.Is(err, wells.ErrEmptyImport) {
				t.Fatalf("err = %v, want ErrEmptyImport", err)
			}
		})
	}
}

func TestFromRowGeneratesMissingID(t *testing.T) {
	w := FromRow(map[string]string{"name": "No ID", "well_cost": "7.5"})
	if !strings.HasPrefix(w.ID, "W-") {
		t.Fatalf("generated id = %q, want W- prefix", w.ID)
	}
	if w.WellCost != 7.5 {
		t.Fatalf("snake_case header not mapped: wellCost = %v", w.WellCost)
	}
}

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{"": 0, "12.5": 12.5, " 3 ": 3, "x1": 0, "-4.25": -4.25}
	for in, want := range cases {
		if got := ParseNumber(in); got != want {
			t.Errorf("ParseNumber(%q) = %v, want %v", in, got, want)
		}
	}
}
