package listings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-adoption-board/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/pets", func(pr chi.Router) {
		// Browse público, sin auth.
		pr.Get("/", listHandler(svc))

		pr.Post("/", createHandler(svc))
		pr.Patch("/{listingID}/status", setStatusHandler(svc))
	})
}

type createListingRequest struct {
	Animal        string   `json:"animal"`
	Breed         string   `json:"breed"`
	AgeGroup      string   `json:"ageGroup"`
	Gender        string   `json:"gender"`
	Compatibility []string `json:"compatibility"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type listingResponse struct {
	ID            int64     `json:"id"`
	OwnerUsername string    `json:"ownerUsername"`
	Animal        string    `json:"animal"`
	Breed         string    `json:"breed"`
	AgeGroup      string    `json:"ageGroup"`
	Gender        string    `json:"gender"`
	Compatibility []string  `json:"compatibility"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		// compat llega como CSV: ?compat=dogs,children
		var compat []string
		if csv := strings.TrimSpace(q.Get("compat")); csv != "" {
			compat = strings.Split(csv, ",")
		}

		items, err := svc.List(r.Context(), Criteria{
			Animal:   q.Get("animal"),
			AgeGroup: q.Get("ageGroup"),
			Gender:   q.Get("gender"),
			Breed:    q.Get("breed"),
			Status:   q.Get("status"),
			Compat:   compat,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]listingResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toListingResponse(l))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not logged in.")
			return
		}

		var req createListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		l, err := svc.Create(r.Context(), sess.Username, CreatePayload{
			Animal:        req.Animal,
			Breed:         req.Breed,
			AgeGroup:      req.AgeGroup,
			Gender:        req.Gender,
			Compatibility: req.Compatibility,
			Description:   req.Description,
			ImageURL:      req.ImageURL,
		})
		if err != nil {
			var verr *ValidationError
			switch {
			case errors.As(err, &verr):
				writeJSON(w, http.StatusBadRequest, map[string]any{
					"error":   "Validation failed.",
					"details": verr.Messages,
				})
			case errors.Is(err, ErrUnauthenticated):
				writeError(w, http.StatusUnauthorized, "Not logged in.")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toListingResponse(l))
	}
}

func setStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not logged in.")
			return
		}

		var req setStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		// Un id no numérico no matchea ninguna publicación: el status se
		// valida primero (400), después la existencia (404).
		id, _ := strconv.ParseInt(chi.URLParam(r, "listingID"), 10, 64)

		l, err := svc.SetStatus(r.Context(), id, req.Status, sess.Username)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidStatus):
				writeError(w, http.StatusBadRequest, "status must be available or adopted.")
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Pet not found.")
			case errors.Is(err, ErrForbidden):
				writeError(w, http.StatusForbidden, "You can only update your own listings.")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toListingResponse(l))
	}
}

func toListingResponse(l Listing) listingResponse {
	compat := make([]string, 0, len(l.Compatibility))
	for _, c := range l.Compatibility {
		compat = append(compat, string(c))
	}

	return listingResponse{
		ID:            l.ID,
		OwnerUsername: l.OwnerUsername,
		Animal:        string(l.Animal),
		Breed:         l.Breed,
		AgeGroup:      string(l.AgeGroup),
		Gender:        string(l.Gender),
		Compatibility: compat,
		Description:   l.Description,
		ImageURL:      l.ImageURL,
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de users y listings
// para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}
