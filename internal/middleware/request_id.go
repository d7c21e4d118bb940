// middleware/request_id.go
// Middleware untuk inject X-Request-ID

package middleware

import (
	"context"
	"net/http"

	"oilgas-portfolio/internal/util"
)

type ctxKey struct{}

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = util.NewID()
			r.Header.Set("X-Request-ID", reqID)
		}
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, reqID)))
	})
}

// RequestIDFrom mengambil request id dari context ("" bila tidak ada).
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
