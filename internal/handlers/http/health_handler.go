// internal/handlers/http/health_handler.go
// Handler sederhana untuk health check

package http

import (
	"encoding/json"
	"net/http"

	"oilgas-portfolio/internal/wells"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status": "ok",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ReadyHandler: siap bila repository sudah berisi sumur.
func ReadyHandler(repo *wells.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := repo.Len()
		status := http.StatusOK
		state := "ready"
		if n == 0 {
			status = http.StatusServiceUnavailable
			state = "empty"
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{"status": state, "wells": n})
	}
}
