package memory

import (
	"context"
	"errors"
	"sync"

	"pet-adoption-board/internal/domain/listings"
)

// listingsRepo mantiene un slice (no un map) para que List conserve el
// orden de inserción, igual que el archivo JSON en producción.
type listingsRepo struct {
	mu    sync.RWMutex
	items []listings.Listing
}

func NewListingsRepo() listings.Repository {
	return &listingsRepo{
		items: make([]listings.Listing, 0),
	}
}

func (r *listingsRepo) List(ctx context.Context) ([]listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Snapshot: el caller nunca ve mutaciones posteriores.
	out := make([]listings.Listing, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *listingsRepo) GetByID(ctx context.Context, id int64) (listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.items {
		if l.ID == id {
			return l, nil
		}
	}
	return listings.Listing{}, listings.ErrNotFound
}

func (r *listingsRepo) Create(ctx context.Context, l listings.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID <= 0 {
		return errors.New("listing id required")
	}
	for _, existing := range r.items {
		if existing.ID == l.ID {
			return errors.New("listing already exists")
		}
	}
	r.items = append(r.items, l)
	return nil
}

func (r *listingsRepo) Update(ctx context.Context, l listings.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.items {
		if existing.ID == l.ID {
			r.items[i] = l
			return nil
		}
	}
	return listings.ErrNotFound
}
