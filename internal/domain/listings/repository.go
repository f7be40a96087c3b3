package listings

import "context"

// Repository opera sobre el conjunto completo de publicaciones.
// List devuelve un snapshot en orden de inserción: una creación concurrente
// no modifica un recorrido en curso.
// GetByID y Update devuelven ErrNotFound si el id no existe.
type Repository interface {
	List(ctx context.Context) ([]Listing, error)
	GetByID(ctx context.Context, id int64) (Listing, error)
	Create(ctx context.Context, l Listing) error
	Update(ctx context.Context, l Listing) error
}
