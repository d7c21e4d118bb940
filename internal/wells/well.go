// internal/wells/well.go
// Model data sumur + state produksi per status

package wells

import (
	"encoding/json"
	"time"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusShutIn   Status = "Shut-in"
	StatusDrilling Status = "Drilling"
)

// ParseStatus menerima label status dari CSV/DB. Nilai tak dikenal dikembalikan apa adanya (ok=false).
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusActive, StatusShutIn, StatusDrilling:
		return Status(s), true
	}
	return Status(s), false
}

// State adalah blok produksi yang artinya bergantung pada status sumur.
// Implementasi: Active, ShutIn, Drilling.
type State interface {
	Status() Status
	isState()
}

// Active: sumur berproduksi, semua field produksi bermakna.
type Active struct {
	IP30              float64
	CurrentProduction float64
	Forecast          float64
	WaterCut          float64
	GOR               float64
}

// ShutIn: sumur pernah produksi (punya IP30) tapi saat ini 0.
type ShutIn struct {
	IP30     float64
	Forecast float64
	WaterCut float64
	GOR      float64
}

// Drilling: belum ada produksi maupun history.
type Drilling struct{}

func (Active) Status() Status   { return StatusActive }
func (ShutIn) Status() Status   { return StatusShutIn }
func (Drilling) Status() Status { return StatusDrilling }

func (Active) isState()   {}
func (ShutIn) isState()   {}
func (Drilling) isState() {}

// Economics adalah nilai turunan yang di-cache pada sumur.
// Hanya Repository (RecalculateEconomics / Replace) yang boleh mengubahnya.
type Economics struct {
	EUR       float64 `json:"eur"`        // MBBL
	BreakEven float64 `json:"break_even"` // $/BBL
	NPV       float64 `json:"npv"`        // MM USD
	IRR       float64 `json:"irr"`        // %
}

type Well struct {
	ID       string
	Name     string
	Asset    string
	Operator string
	Field    string

	SpudDate       time.Time
	CompletionDate time.Time
	Vintage        int

	Latitude  float64
	Longitude float64

	TotalDepth     float64
	LateralLength  float64
	CompletionType string
	ProppantLoaded float64 // klbs
	Stages         float64
	DrillingDays   float64

	WellCost float64 // MM USD

	Economics Economics
	State     State

	// Extra menampung kolom import yang tidak dikenal (teks bebas).
	Extra map[string]string
	// Metrics: kolom numerik allow-list yang tidak punya field sendiri (ip90, cumulativeOil, ...).
	Metrics map[string]float64
}

// Status mengikuti State; sumur tanpa State dianggap Drilling.
func (w Well) Status() Status {
	if w.State == nil {
		return StatusDrilling
	}
	return w.State.Status()
}

func (w Well) IsActive() bool { return w.Status() == StatusActive }

func (w Well) IP30() float64 {
	switch s := w.State.(type) {
	case Active:
		return s.IP30
	case ShutIn:
		return s.IP30
	}
	return 0
}

func (w Well) CurrentProduction() float64 {
	if s, ok := w.State.(Active); ok {
		return s.CurrentProduction
	}
	return 0
}

func (w Well) Forecast() float64 {
	switch s := w.State.(type) {
	case Active:
		return s.Forecast
	case ShutIn:
		return s.Forecast
	}
	return 0
}

func (w Well) WaterCut() float64 {
	switch s := w.State.(type) {
	case Active:
		return s.WaterCut
	case ShutIn:
		return s.WaterCut
	}
	return 0
}

func (w Well) GOR() float64 {
	switch s := w.State.(type) {
	case Active:
		return s.GOR
	case ShutIn:
		return s.GOR
	}
	return 0
}

// StartDate: completion date, fallback ke spud date.
func (w Well) StartDate() time.Time {
	if !w.CompletionDate.IsZero() {
		return w.CompletionDate
	}
	return w.SpudDate
}

// ProductionFields adalah bentuk datar dari blok produksi, dipakai importer & DB source.
type ProductionFields struct {
	IP30              float64
	CurrentProduction float64
	Forecast          float64
	WaterCut          float64
	GOR               float64
}

// NewState membangun State dari status + field datar.
// Status tak dikenal diperlakukan seperti Shut-in bila ada IP30, selain itu Drilling.
func NewState(status Status, f ProductionFields) State {
	switch status {
	case StatusActive:
		return Active{
			IP30:              f.IP30,
			CurrentProduction: f.CurrentProduction,
			Forecast:          f.Forecast,
			WaterCut:          f.WaterCut,
			GOR:               f.GOR,
		}
	case StatusDrilling:
		return Drilling{}
	case StatusShutIn:
		return ShutIn{IP30: f.IP30, Forecast: f.Forecast, WaterCut: f.WaterCut, GOR: f.GOR}
	}
	if f.IP30 != 0 {
		return ShutIn{IP30: f.IP30, Forecast: f.Forecast, WaterCut: f.WaterCut, GOR: f.GOR}
	}
	return Drilling{}
}

func (w Well) clone() Well {
	out := w
	if w.Extra != nil {
		out.Extra = make(map[string]string, len(w.Extra))
		for k, v := range w.Extra {
			out.Extra[k] = v
		}
	}
	if w.Metrics != nil {
		out.Metrics = make(map[string]float64, len(w.Metrics))
		for k, v := range w.Metrics {
			out.Metrics[k] = v
		}
	}
	return out
}

// wellJSON adalah bentuk datar Well untuk API; field produksi mengikuti State.
type wellJSON struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Asset             string             `json:"asset"`
	Operator          string             `json:"operator,omitempty"`
	Field             string             `json:"field,omitempty"`
	Status            Status             `json:"status"`
	SpudDate          string             `json:"spud_date,omitempty"`
	CompletionDate    string             `json:"completion_date,omitempty"`
	Vintage           int                `json:"vintage"`
	Latitude          float64            `json:"latitude"`
	Longitude         float64            `json:"longitude"`
	TotalDepth        float64            `json:"total_depth"`
	LateralLength     float64            `json:"lateral_length"`
	CompletionType    string             `json:"completion_type,omitempty"`
	ProppantLoaded    float64            `json:"proppant_loaded"`
	Stages            float64            `json:"stages"`
	DrillingDays      float64            `json:"drilling_days"`
	WellCost          float64            `json:"well_cost"`
	IP30              float64            `json:"ip30"`
	CurrentProduction float64            `json:"current_production"`
	Forecast          float64            `json:"forecast"`
	WaterCut          float64            `json:"water_cut"`
	GOR               float64            `json:"gor"`
	Economics
	Metrics           map[string]float64 `json:"metrics,omitempty"`
	Extra             map[string]string  `json:"extra,omitempty"`
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func (w Well) MarshalJSON() ([]byte, error) {
	return json.Marshal(wellJSON{
		ID:                w.ID,
		Name:              w.Name,
		Asset:             w.Asset,
		Operator:          w.Operator,
		Field:             w.Field,
		Status:            w.Status(),
		SpudDate:          fmtDate(w.SpudDate),
		CompletionDate:    fmtDate(w.CompletionDate),
		Vintage:           w.Vintage,
		Latitude:          w.Latitude,
		Longitude:         w.Longitude,
		TotalDepth:        w.TotalDepth,
		LateralLength:     w.LateralLength,
		CompletionType:    w.CompletionType,
		ProppantLoaded:    w.ProppantLoaded,
		Stages:            w.Stages,
		DrillingDays:      w.DrillingDays,
		WellCost:          w.WellCost,
		IP30:              w.IP30(),
		CurrentProduction: w.CurrentProduction(),
		Forecast:          w.Forecast(),
		WaterCut:          w.WaterCut(),
		GOR:               w.GOR(),
		Economics:         w.Economics,
		Metrics:           w.Metrics,
		Extra:             w.Extra,
	})
}
