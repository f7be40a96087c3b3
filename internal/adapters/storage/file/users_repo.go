package file

import (
	"context"
	"time"

	"pet-adoption-board/internal/domain/users"
)

// userRecord es la forma persistida en users.json (camelCase, como los
// archivos de datos originales).
type userRecord struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UsersRepo struct {
	store *Store
}

func NewUsersRepo(store *Store) *UsersRepo {
	return &UsersRepo{store: store}
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	var recs []userRecord
	if err := r.store.Load(&recs); err != nil {
		return users.User{}, err
	}

	for _, rec := range recs {
		if rec.Username == username {
			return users.User(rec), nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	return r.store.Mutate(func() error {
		var recs []userRecord
		if err := r.store.load(&recs); err != nil {
			return err
		}

		for _, rec := range recs {
			if rec.Username == u.Username {
				return users.ErrDuplicateUsername
			}
		}

		recs = append(recs, userRecord(u))
		return r.store.replace(recs)
	})
}
