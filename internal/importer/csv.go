// internal/importer/csv.go
// Import sumur dari CSV: kolom numerik allow-list, sisanya teks bebas

package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"oilgas-portfolio/internal/util"
	"oilgas-portfolio/internal/wells"
)

// NumericFields: kolom yang selalu diparse sebagai angka (gagal parse -> 0).
var NumericFields = []string{
	"vintage", "totalDepth", "lateralLength", "drillingDays",
	"wellCost", "ip30", "ip90", "ip180", "eur", "currentProduction",
	"cumulativeOil", "cumulativeGas", "cumulativeWater", "waterCut", "gor",
	"npv", "irr", "breakEven", "proppantLoaded", "fluidPumped", "stages",
	"clusterSpacing", "reservoirPressure", "bottomholeTemperature",
	"permeability", "porosity", "oilSaturation", "payThickness",
}

// ErrMalformedCSV: struktur CSV tidak bisa dibaca (bukan sekadar nilai kosong).
var ErrMalformedCSV = errors.New("malformed csv")

// kolom lokasi & forecast bukan allow-list tapi field Well-nya numerik
var coordFields = []string{"latitude", "longitude", "forecast"}

var (
	numericSet = keySet(NumericFields)
	coordSet   = keySet(coordFields)
	canonical  = canonicalNames()
)

// normKey menyamakan "well_cost", "Well Cost" dan "wellCost".
func normKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

func keySet(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[normKey(n)] = true
	}
	return m
}

func canonicalNames() map[string]string {
	m := map[string]string{}
	for _, n := range append(append([]string{}, NumericFields...), coordFields...) {
		m[normKey(n)] = n
	}
	return m
}

// ParseCSV membaca header + baris data. Baris kosong dilewati,
// field kosong default 0 / "". Tanpa baris valid -> wells.ErrEmptyImport.
func ParseCSV(r io.Reader) ([]wells.Well, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, wells.ErrEmptyImport
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedCSV, err)
	}
	for i := range head {
		head[i] = strings.TrimSpace(strings.TrimPrefix(head[i], "\ufeff"))
	}

	var out []wells.Well
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCSV, line, err)
		}
		if blank(rec) {
			continue
		}
		row := make(map[string]string, len(head))
		for i, h := range head {
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			} else {
				row[h] = ""
			}
		}
		out = append(out, FromRow(row))
	}
	if len(out) == 0 {
		return nil, wells.ErrEmptyImport
	}
	return out, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// ParseNumber: angka desimal; kosong / tidak valid -> 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "2006/01/02", "01/02/2006", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FromRow memetakan satu baris (header -> nilai) ke Well.
// Dipakai juga oleh sumber lain yang menghasilkan baris teks (mis. Google Sheets export).
func FromRow(row map[string]string) wells.Well {
	num := map[string]float64{}
	text := map[string]string{}
	for k, v := range row {
		nk := normKey(k)
		if numericSet[nk] || coordSet[nk] {
			num[canonical[nk]] = ParseNumber(v)
			continue
		}
		text[nk] = v
	}

	w := wells.Well{
		ID:             text["id"],
		Name:           text["name"],
		Asset:          text["asset"],
		Operator:       text["operator"],
		Field:          text["field"],
		CompletionType: text["completiontype"],
		SpudDate:       parseDate(text["spuddate"]),
		CompletionDate: parseDate(text["completiondate"]),
		Vintage:        int(num["vintage"]),
		Latitude:       num["latitude"],
		Longitude:      num["longitude"],
		TotalDepth:     num["totalDepth"],
		LateralLength:  num["lateralLength"],
		ProppantLoaded: num["proppantLoaded"],
		Stages:         num["stages"],
		DrillingDays:   num["drillingDays"],
		WellCost:       num["wellCost"],
		Economics: wells.Economics{
			EUR:       num["eur"],
			BreakEven: num["breakEven"],
			NPV:       num["npv"],
			IRR:       num["irr"],
		},
	}
	if w.ID == "" {
		w.ID = util.NewWellID()
	}

	status, _ := wells.ParseStatus(text["status"])
	w.State = wells.NewState(status, wells.ProductionFields{
		IP30:              num["ip30"],
		CurrentProduction: num["currentProduction"],
		Forecast:          num["forecast"],
		WaterCut:          num["waterCut"],
		GOR:               num["gor"],
	})

	for _, k := range []string{"ip90", "ip180", "cumulativeOil", "cumulativeGas", "cumulativeWater",
		"fluidPumped", "clusterSpacing", "reservoirPressure", "bottomholeTemperature",
		"permeability", "porosity", "oilSaturation", "payThickness"} {
		v, ok := num[k]
		if !ok {
			continue
		}
		if w.Metrics == nil {
			w.Metrics = map[string]float64{}
		}
		w.Metrics[k] = v
	}

	for k, v := range row {
		if _, known := knownText[normKey(k)]; known || numericSet[normKey(k)] || coordSet[normKey(k)] {
			continue
		}
		if w.Extra == nil {
			w.Extra = map[string]string{}
		}
		w.Extra[k] = v
	}
	return w
}

var knownText = map[string]struct{}{
	"id": {}, "name": {}, "asset": {}, "operator": {}, "field": {}, "status": {},
	"completiontype": {}, "spuddate": {}, "completiondate": {},
}

// ImportCSV mem-parse r lalu mengganti seluruh isi repo.
func ImportCSV(repo *wells.Repository, r io.Reader) ([]wells.Well, error) {
	ws, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	if err := repo.Replace(ws); err != nil {
		return nil, err
	}
	return ws, nil
}
