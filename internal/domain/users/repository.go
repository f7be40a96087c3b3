package users

import "context"

// Repository persiste cuentas. La búsqueda es case-sensitive exacta.
// GetByUsername devuelve ErrNotFound cuando la cuenta no existe;
// Create devuelve ErrDuplicateUsername si el username ya está tomado.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, u User) error
}
