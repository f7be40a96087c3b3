package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption-board/internal/middleware"
	"pet-adoption-board/internal/ports/session"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, sessions session.Manager) {
	r.Route("/api/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc, sessions))
		ar.Post("/logout", logoutHandler(sessions))
		ar.Get("/me", meHandler())
	})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if _, err := svc.Register(r.Context(), req.Username, req.Password); err != nil {
			switch {
			case errors.Is(err, ErrInvalidUsername):
				writeError(w, http.StatusBadRequest, "Username must be 3-20 chars: letters, digits, underscore.")
			case errors.Is(err, ErrInvalidPassword):
				writeError(w, http.StatusBadRequest, "Password must be >= 6 chars and include letters + digits.")
			case errors.Is(err, ErrDuplicateUsername):
				writeError(w, http.StatusConflict, "Username already exists.")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func loginHandler(svc *Service, sessions session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		username, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			// Unificado: no se distingue cuenta inexistente de password malo.
			if errors.Is(err, ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid username or password.")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		token, err := sessions.Issue(r.Context(), username)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "username": username})
	}
}

func logoutHandler(sessions session.Manager) http.HandlerFunc {
	// Idempotente: sin cookie o con token ya destruido igual responde ok.
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(session.CookieName); err == nil && c.Value != "" {
			_ = sessions.Destroy(r.Context(), c.Value)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func meHandler() http.HandlerFunc {
	// Siempre 200: "no logueado" es una respuesta válida, no un error.
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok {
			writeJSON(w, http.StatusOK, map[string]any{"loggedIn": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"loggedIn": true, "username": sess.Username})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}
