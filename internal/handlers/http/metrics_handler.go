// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus format sederhana

package http

import (
	"fmt"
	"net/http"

	"oilgas-portfolio/internal/wells"
)

func MetricsHandler(repo *wells.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := len(repo.Active())
		s := repo.Settings()
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")
		fmt.Fprintf(w, "# HELP wells_loaded Number of wells in the repository\n# TYPE wells_loaded gauge\nwells_loaded %d\n", repo.Len())
		fmt.Fprintf(w, "# HELP wells_active Number of wells with status Active\n# TYPE wells_active gauge\nwells_active %d\n", active)
		fmt.Fprintf(w, "# HELP economics_oil_price Oil price used by the last recalculation\n# TYPE economics_oil_price gauge\neconomics_oil_price %g\n", s.OilPrice)
	}
}
