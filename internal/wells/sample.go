// internal/wells/sample.go
// Data contoh 12 sumur (Eagle Ford, Permian Basin, Bakken) untuk fallback tanpa sumber data

package wells

import "time"

func day(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

type sampleRow struct {
	id, name, asset, status, spud, completion string
	vintage                                   int
	operator, field                           string
	lat, lon                                  float64
	td, lateral                               float64
	completionType                            string
	proppant, stages, drillingDays, cost      float64
	ip30, eur, breakEven, npv, irr            float64
	current, forecast, waterCut, gor          float64
}

var sampleRows = []sampleRow{
	{"W-001", "Eagle Ford 1H", "Eagle Ford", "Active", "2022-03-15", "2022-05-20", 2022, "ABC Energy", "South Block", 28.5, -98.5, 18500, 9500, "Slickwater", 7500, 45, 18, 8.5, 1250, 580, 38, 12.5, 45, 425, 450, 15, 850},
	{"W-002", "Permian 2H", "Permian Basin", "Active", "2023-01-10", "2023-03-05", 2023, "XYZ Oil", "West Field", 31.8, -102.3, 20000, 10500, "Hybrid", 8200, 50, 16, 9.2, 1450, 720, 35, 18.3, 52, 680, 720, 8, 920},
	{"W-003", "Bakken 3H", "Bakken", "Active", "2021-08-20", "2021-10-15", 2021, "North Energy", "Central Area", 47.9, -103.4, 19800, 9800, "Slickwater", 7800, 48, 20, 8.8, 980, 480, 42, 8.7, 38, 210, 280, 25, 780},
	{"W-004", "Eagle Ford 4H", "Eagle Ford", "Active", "2023-06-01", "2023-07-25", 2023, "ABC Energy", "South Block", 28.6, -98.4, 18200, 10200, "Hybrid", 8500, 52, 15, 9.5, 1580, 780, 33, 21.5, 58, 890, 850, 5, 950},
	{"W-005", "Permian 5H", "Permian Basin", "Active", "2022-09-15", "2022-11-10", 2022, "XYZ Oil", "East Field", 31.9, -102.1, 19500, 9200, "Slickwater", 7200, 42, 17, 8.2, 1150, 550, 40, 10.8, 42, 380, 420, 18, 880},
	{"W-006", "Bakken 6H", "Bakken", "Shut-in", "2021-03-10", "2021-05-05", 2021, "North Energy", "North Area", 48.1, -103.2, 19200, 8800, "Gel", 6800, 40, 22, 8.0, 850, 420, 48, 5.2, 28, 0, 180, 35, 720},
	{"W-007", "Eagle Ford 7H", "Eagle Ford", "Active", "2024-01-05", "2024-02-20", 2024, "ABC Energy", "North Block", 28.7, -98.3, 18800, 10800, "Slickwater", 9000, 55, 14, 10.2, 1720, 850, 31, 25.8, 62, 1350, 1200, 3, 980},
	{"W-008", "Permian 8H", "Permian Basin", "Active", "2023-08-20", "2023-10-15", 2023, "XYZ Oil", "Central Field", 31.7, -102.5, 20500, 11000, "Hybrid", 8800, 58, 15, 10.5, 1650, 820, 32, 23.5, 60, 920, 880, 6, 940},
	{"W-009", "Bakken 9H", "Bakken", "Active", "2022-05-15", "2022-07-10", 2022, "North Energy", "South Area", 47.8, -103.6, 19500, 9500, "Slickwater", 7600, 46, 19, 8.6, 1050, 520, 41, 9.5, 40, 315, 350, 20, 810},
	{"W-010", "Eagle Ford 10H", "Eagle Ford", "Drilling", "2024-11-01", "", 2024, "ABC Energy", "West Block", 28.4, -98.6, 18600, 10000, "Hybrid", 8000, 50, 16, 9.8, 0, 720, 34, 19.2, 55, 0, 0, 0, 0},
	{"W-011", "Permian 11H", "Permian Basin", "Active", "2021-11-10", "2022-01-05", 2022, "XYZ Oil", "South Field", 31.6, -102.7, 19800, 9600, "Slickwater", 7400, 44, 18, 8.4, 1180, 570, 39, 11.2, 43, 295, 320, 22, 860},
	{"W-012", "Bakken 12H", "Bakken", "Active", "2023-03-20", "2023-05-15", 2023, "North Energy", "East Area", 48.0, -103.1, 19600, 10200, "Hybrid", 8300, 51, 17, 9.4, 1380, 680, 36, 16.5, 50, 720, 680, 10, 900},
}

// SampleWells mengembalikan salinan baru data contoh.
func SampleWells() []Well {
	out := make([]Well, 0, len(sampleRows))
	for _, s := range sampleRows {
		status, _ := ParseStatus(s.status)
		out = append(out, Well{
			ID:             s.id,
			Name:           s.name,
			Asset:          s.asset,
			Operator:       s.operator,
			Field:          s.field,
			SpudDate:       day(s.spud),
			CompletionDate: day(s.completion),
			Vintage:        s.vintage,
			Latitude:       s.lat,
			Longitude:      s.lon,
			TotalDepth:     s.td,
			LateralLength:  s.lateral,
			CompletionType: s.completionType,
			ProppantLoaded: s.proppant,
			Stages:         s.stages,
			DrillingDays:   s.drillingDays,
			WellCost:       s.cost,
			Economics:      Economics{EUR: s.eur, BreakEven: s.breakEven, NPV: s.npv, IRR: s.irr},
			State: NewState(status, ProductionFields{
				IP30:              s.ip30,
				CurrentProduction: s.current,
				Forecast:          s.forecast,
				WaterCut:          s.waterCut,
				GOR:               s.gor,
			}),
		})
	}
	return out
}
