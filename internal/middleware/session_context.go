package middleware

import (
	"context"
	"net/http"

	"pet-adoption-board/internal/ports/session"
)

type ctxKey string

const sessionKey ctxKey = "session"

// SessionContext:
// - Si viene la cookie y el token resuelve => setea la sesión en el contexto.
// - Si no hay cookie, o el token es desconocido/vencido, el request sigue
//   igual; los handlers deciden si exigen auth (browse es público).
func SessionContext(mgr session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(session.CookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			s, ok := mgr.Resolve(r.Context(), c.Value)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (session.Session, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}
