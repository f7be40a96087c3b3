package file

import (
	"context"
	"errors"
	"time"

	"pet-adoption-board/internal/domain/listings"
)

// listingRecord es la forma persistida en pets.json, compatible con los
// archivos de datos del sistema original.
type listingRecord struct {
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

type ListingsRepo struct {
	store *Store
}

func NewListingsRepo(store *Store) *ListingsRepo {
	return &ListingsRepo{store: store}
}

func (r *ListingsRepo) List(ctx context.Context) ([]listings.Listing, error) {
	var recs []listingRecord
	if err := r.store.Load(&recs); err != nil {
		return nil, err
	}

	// El orden del archivo es el orden de inserción.
	out := make([]listings.Listing, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromListingRecord(rec))
	}
	return out, nil
}

func (r *ListingsRepo) GetByID(ctx context.Context, id int64) (listings.Listing, error) {
	var recs []listingRecord
	if err := r.store.Load(&recs); err != nil {
		return listings.Listing{}, err
	}

	for _, rec := range recs {
		if rec.ID == id {
			return fromListingRecord(rec), nil
		}
	}
	return listings.Listing{}, listings.ErrNotFound
}

func (r *ListingsRepo) Create(ctx context.Context, l listings.Listing) error {
	return r.store.Mutate(func() error {
		var recs []listingRecord
		if err := r.store.load(&recs); err != nil {
			return err
		}

		for _, rec := range recs {
			if rec.ID == l.ID {
				return errors.New("listing already exists")
			}
		}

		recs = append(recs, toListingRecord(l))
		return r.store.replace(recs)
	})
}

func (r *ListingsRepo) Update(ctx context.Context, l listings.Listing) error {
	return r.store.Mutate(func() error {
		var recs []listingRecord
		if err := r.store.load(&recs); err != nil {
			return err
		}

		for i, rec := range recs {
			if rec.ID == l.ID {
				recs[i] = toListingRecord(l)
				return r.store.replace(recs)
			}
		}
		return listings.ErrNotFound
	})
}

func toListingRecord(l listings.Listing) listingRecord {
	compat := make([]string, 0, len(l.Compatibility))
	for _, c := range l.Compatibility {
		compat = append(compat, string(c))
	}

	return listingRecord{
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

func fromListingRecord(rec listingRecord) listings.Listing {
	compat := make([]listings.CompatTag, 0, len(rec.Compatibility))
	for _, c := range rec.Compatibility {
		compat = append(compat, listings.CompatTag(c))
	}

	return listings.Listing{
		ID:            rec.ID,
		OwnerUsername: rec.OwnerUsername,
		Animal:        listings.Animal(rec.Animal),
		Breed:         rec.Breed,
		AgeGroup:      listings.AgeGroup(rec.AgeGroup),
		Gender:        listings.Gender(rec.Gender),
		Compatibility: compat,
		Description:   rec.Description,
		ImageURL:      rec.ImageURL,
		Status:        listings.Status(rec.Status),
		CreatedAt:     rec.CreatedAt,
	}
}
