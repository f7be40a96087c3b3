package listings

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrUnauthenticated = errors.New("not logged in")
	ErrNotFound        = errors.New("listing not found")
	ErrForbidden       = errors.New("only the owner can update a listing")
	ErrInvalidStatus   = errors.New("status must be available or adopted")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Create valida el payload, asigna el siguiente id y persiste.
// El id es max(ids existentes)+1, o 1 con el store vacío: un escaneo lineal
// sin contador persistido, que tolera huecos e ids fuera de orden.
func (s *Service) Create(ctx context.Context, ownerUsername string, payload CreatePayload) (Listing, error) {
	if strings.TrimSpace(ownerUsername) == "" {
		return Listing{}, ErrUnauthenticated
	}

	n, verr := ValidatePayload(payload)
	if verr != nil {
		return Listing{}, verr
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return Listing{}, err
	}
	var maxID int64
	for _, l := range existing {
		if l.ID > maxID {
			maxID = l.ID
		}
	}

	l := Listing{
		ID:            maxID + 1,
		OwnerUsername: ownerUsername,
		Animal:        n.Animal,
		Breed:         n.Breed,
		AgeGroup:      n.AgeGroup,
		Gender:        n.Gender,
		Compatibility: n.Compatibility,
		Description:   n.Description,
		ImageURL:      n.ImageURL,
		Status:        StatusAvailable,
		CreatedAt:     s.now(),
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

// SetStatus cambia únicamente el estado de la publicación, y solo si el
// actor es el dueño. El resto de los campos queda intacto.
func (s *Service) SetStatus(ctx context.Context, id int64, rawStatus, actingUsername string) (Listing, error) {
	status := Status(normalize(rawStatus))
	if status != StatusAvailable && status != StatusAdopted {
		return Listing{}, ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Listing{}, err
	}
	if current.OwnerUsername != actingUsername {
		return Listing{}, ErrForbidden
	}

	current.Status = status
	if err := s.repo.Update(ctx, current); err != nil {
		return Listing{}, err
	}
	return current, nil
}

// List es browse público: aplica los criterios sobre un snapshot del store.
func (s *Service) List(ctx context.Context, c Criteria) ([]Listing, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, c), nil
}
