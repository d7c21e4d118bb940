// internal/wells/repository.go
// Repository in-memory: sumber kebenaran tunggal untuk data sumur + history produksi

package wells

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"oilgas-portfolio/internal/util"
)

// BaselineOilPrice adalah harga acuan saat NPV/break-even awal dihitung.
const BaselineOilPrice = 75.0

var (
	ErrWellNotFound = errors.New("well not found")
	ErrEmptyImport  = errors.New("no valid wells found")
	ErrInvalidPrice = errors.New("oil price must be positive")
	ErrDuplicateID  = errors.New("duplicate well id")
)

// Settings: asumsi ekonomi yang sedang berlaku.
type Settings struct {
	OilPrice     float64 `json:"oil_price"`
	GasPrice     float64 `json:"gas_price"`
	DiscountRate float64 `json:"discount_rate"`
}

func DefaultSettings() Settings {
	return Settings{OilPrice: BaselineOilPrice, GasPrice: 3.5, DiscountRate: 10}
}

type Filter struct {
	Status         string // "" / "all" = semua
	Asset          string
	Search         string // name, id, asset (case-insensitive)
	Vintage        int    // 0 = semua
	CompletionType string
}

// Snapshot adalah hasil Export.
type Snapshot struct {
	Wells      []Well
	Economics  Settings
	ExportedAt time.Time
}

type Repository struct {
	mu       sync.RWMutex
	wells    []Well
	history  map[string][]ProductionRecord
	settings Settings

	rng    *rand.Rand
	clock  util.Clock
	months int
}

type Option func(*Repository)

// WithSeed membuat history sintetis reproducible.
func WithSeed(seed uint64) Option {
	return func(r *Repository) { r.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

func WithClock(c util.Clock) Option {
	return func(r *Repository) { r.clock = c }
}

func WithHistoryMonths(n int) Option {
	return func(r *Repository) {
		if n > 0 {
			r.months = n
		}
	}
}

func WithSettings(s Settings) Option {
	return func(r *Repository) { r.settings = s }
}

// NewRepository membuat repository kosong. Gunakan Replace untuk mengisi data.
func NewRepository(opts ...Option) *Repository {
	r := &Repository{
		history:  map[string][]ProductionRecord{},
		settings: DefaultSettings(),
		clock:    util.RealClock{},
		months:   DefaultHistoryMonths,
	}
	for _, o := range opts {
		o(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return r
}

// Replace mengganti seluruh koleksi sumur dan meregenerasi history.
// Sumur Drilling / tanpa IP30 mendapat history kosong.
func (r *Repository) Replace(ws []Well) error {
	if len(ws) == 0 {
		return ErrEmptyImport
	}
	if err := checkUniqueIDs(ws); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Well, 0, len(ws))
	hist := make(map[string][]ProductionRecord, len(ws))
	for _, w := range ws {
		if w.State == nil {
			w.State = Drilling{}
		}
		next = append(next, w.clone())
		hist[w.ID] = GenerateHistory(w, r.months, r.rng)
	}
	r.wells = next
	r.history = hist
	return nil
}

// ReplaceWithHistory seperti Replace tapi memakai history yang sudah ada (mis. dari DB).
// Sumur tanpa entri di history tetap diregenerasi.
func (r *Repository) ReplaceWithHistory(ws []Well, history map[string][]ProductionRecord) error {
	if len(ws) == 0 {
		return ErrEmptyImport
	}
	if err := checkUniqueIDs(ws); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Well, 0, len(ws))
	hist := make(map[string][]ProductionRecord, len(ws))
	for _, w := range ws {
		if w.State == nil {
			w.State = Drilling{}
		}
		next = append(next, w.clone())
		if h, ok := history[w.ID]; ok && w.Status() != StatusDrilling {
			hist[w.ID] = append([]ProductionRecord(nil), h...)
			continue
		}
		hist[w.ID] = GenerateHistory(w, r.months, r.rng)
	}
	r.wells = next
	r.history = hist
	return nil
}

// checkUniqueIDs: history di-key per ID, jadi ID ganda ditolak utuh.
func checkUniqueIDs(ws []Well) error {
	seen := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		if _, ok := seen[w.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, w.ID)
		}
		seen[w.ID] = struct{}{}
	}
	return nil
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.wells)
}

// List mengembalikan salinan sumur sesuai filter (urutan sesuai data asli).
func (r *Repository) List(f Filter) []Well {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Well, 0, len(r.wells))
	for _, w := range r.wells {
		if f.Status != "" && f.Status != "all" && string(w.Status()) != f.Status {
			continue
		}
		if f.Asset != "" && f.Asset != "all" && w.Asset != f.Asset {
			continue
		}
		if f.Vintage != 0 && w.Vintage != f.Vintage {
			continue
		}
		if f.CompletionType != "" && f.CompletionType != "all" && w.CompletionType != f.CompletionType {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(w.Name), search) &&
			!strings.Contains(strings.ToLower(w.ID), search) &&
			!strings.Contains(strings.ToLower(w.Asset), search) {
			continue
		}
		out = append(out, w.clone())
	}
	return out
}

func (r *Repository) All() []Well { return r.List(Filter{}) }

func (r *Repository) Active() []Well { return r.List(Filter{Status: string(StatusActive)}) }

func (r *Repository) Get(id string) (Well, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wells {
		if w.ID == id {
			return w.clone(), nil
		}
	}
	return Well{}, fmt.Errorf("%w: %s", ErrWellNotFound, id)
}

// History mengembalikan salinan history. days > 0 membatasi ke ceil(days/30) bulan terakhir.
func (r *Repository) History(id string, days int) []ProductionRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h := r.history[id]
	if days > 0 {
		months := int(math.Ceil(float64(days) / DaysPerMonth))
		if months < len(h) {
			h = h[len(h)-months:]
		}
	}
	return append([]ProductionRecord{}, h...)
}

// Assets: daftar tag asset unik, urut kemunculan pertama.
func (r *Repository) Assets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]bool{}
	var out []string
	for _, w := range r.wells {
		if !seen[w.Asset] {
			seen[w.Asset] = true
			out = append(out, w.Asset)
		}
	}
	return out
}

// Vintages: tahun unik, urut kemunculan pertama.
func (r *Repository) Vintages() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[int]bool{}
	var out []int
	for _, w := range r.wells {
		if !seen[w.Vintage] {
			seen[w.Vintage] = true
			out = append(out, w.Vintage)
		}
	}
	return out
}

func (r *Repository) Settings() Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// RecalculateEconomics menskalakan NPV & break-even tersimpan secara linier terhadap
// rasio harga minyak oilPrice/75. Bukan DCF ulang; pemanggilan berulang bersifat kumulatif.
func (r *Repository) RecalculateEconomics(oilPrice, gasPrice, discountRate float64) error {
	if oilPrice <= 0 || math.IsNaN(oilPrice) || math.IsInf(oilPrice, 0) {
		return ErrInvalidPrice
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = Settings{OilPrice: oilPrice, GasPrice: gasPrice, DiscountRate: discountRate}

	factor := oilPrice / BaselineOilPrice
	for i := range r.wells {
		e := &r.wells[i].Economics
		if e.NPV == 0 {
			continue
		}
		e.NPV, _ = decimal.NewFromFloat(e.NPV * factor).Round(2).Float64()
		e.BreakEven = math.Floor(e.BreakEven/factor + 0.5)
	}
	return nil
}

// Export mengambil snapshot wells + setting ekonomi.
// Wells & settings diambil dalam satu read lock agar konsisten terhadap recalculate.
func (r *Repository) Export() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws := make([]Well, 0, len(r.wells))
	for _, w := range r.wells {
		ws = append(ws, w.clone())
	}
	return Snapshot{Wells: ws, Economics: r.settings, ExportedAt: r.clock.Now().UTC()}
}
