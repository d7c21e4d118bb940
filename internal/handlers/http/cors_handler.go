// internal/handlers/http/cors_handler.go
package http

import "net/http"

// PreflightHandler mengembalikan 204 untuk OPTIONS beserta method yang diizinkan.
func PreflightHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
	w.WriteHeader(http.StatusNoContent)
}
