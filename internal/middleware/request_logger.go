package middleware

import (
	"net/http"
	"time"

	"pet-adoption-board/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger registra método, path, status y duración de cada request.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			next.ServeHTTP(ww, r)

			log.Info("http request", map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"status": ww.Status(),
				"dur_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}
