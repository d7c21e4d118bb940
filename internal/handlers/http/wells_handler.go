// internal/handlers/http/wells_handler.go
// Handler read-only koleksi sumur & history produksi

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"oilgas-portfolio/internal/services"
	"oilgas-portfolio/internal/util"
	"oilgas-portfolio/internal/wells"
)

// ListWells: GET /api/v1/wells?status=&asset=&search=&vintage=&completion_type=
func (a *API) ListWells(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := wells.Filter{
		Status:         strings.TrimSpace(q.Get("status")),
		Asset:          strings.TrimSpace(q.Get("asset")),
		Search:         q.Get("search"),
		CompletionType: strings.TrimSpace(q.Get("completion_type")),
	}
	if v := q.Get("vintage"); v != "" && v != "all" {
		n, err := strconv.Atoi(v)
		if err != nil {
			a.writeError(w, r, util.BadInput("vintage must be a year"))
			return
		}
		f.Vintage = n
	}
	ws := a.Repo.List(f)
	writeJSON(w, http.StatusOK, map[string]any{"count": len(ws), "wells": ws})
}

// GetWell: GET /api/v1/wells/{id}
func (a *API) GetWell(w http.ResponseWriter, r *http.Request) {
	well, err := a.Repo.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, well)
}

// WellHistory: GET /api/v1/wells/{id}/history?days=N
func (a *API) WellHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := a.Repo.Get(id); err != nil {
		a.writeError(w, r, err)
		return
	}
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			a.writeError(w, r, util.BadInput("days must be a non-negative integer"))
			return
		}
		days = n
	}
	writeJSON(w, http.StatusOK, map[string]any{"well_id": id, "history": a.Repo.History(id, days)})
}

// WellForecast: GET /api/v1/wells/{id}/forecast
func (a *API) WellForecast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := a.Repo.Get(id); err != nil {
		a.writeError(w, r, err)
		return
	}
	hist := a.Repo.History(id, 0)
	writeJSON(w, http.StatusOK, map[string]any{
		"well_id":  id,
		"params":   services.FitDeclineCurve(hist),
		"forecast": services.ForecastNextYear(hist),
		"variance": services.ForecastVariance(hist),
	})
}

// Filters: GET /api/v1/wells/filters, nilai unik untuk dropdown.
func (a *API) Filters(w http.ResponseWriter, r *http.Request) {
	types := []string{}
	seen := map[string]bool{}
	for _, well := range a.Repo.All() {
		if well.CompletionType != "" && !seen[well.CompletionType] {
			seen[well.CompletionType] = true
			types = append(types, well.CompletionType)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"assets":           a.Repo.Assets(),
		"vintages":         a.Repo.Vintages(),
		"completion_types": types,
		"statuses":         []wells.Status{wells.StatusActive, wells.StatusShutIn, wells.StatusDrilling},
	})
}
