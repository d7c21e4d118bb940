// middleware/cors.go
package middleware

import "net/http"

// CORS mengizinkan dashboard dari origin mana pun (API read-mostly, tanpa auth).
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
		next.ServeHTTP(w, r)
	})
}
