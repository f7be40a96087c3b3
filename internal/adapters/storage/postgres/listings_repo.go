package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-adoption-board/internal/domain/listings"
)

type ListingsRepo struct {
	db *sql.DB
}

func NewListingsRepo(db *sql.DB) *ListingsRepo {
	return &ListingsRepo{db: db}
}

func (r *ListingsRepo) List(ctx context.Context) ([]listings.Listing, error) {
	// Los ids son monotónicos: ordenar por id = orden de inserción.
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_username,
			animal, breed, age_group, gender,
			compatibility, description, image_url,
			status, created_at
		FROM listings
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]listings.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *ListingsRepo) GetByID(ctx context.Context, id int64) (listings.Listing, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_username,
			animal, breed, age_group, gender,
			compatibility, description, image_url,
			status, created_at
		FROM listings
		WHERE id = $1
	`, id)

	l, err := scanListing(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return listings.Listing{}, listings.ErrNotFound
		}
		return listings.Listing{}, err
	}
	return l, nil
}

func (r *ListingsRepo) Create(ctx context.Context, l listings.Listing) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO listings (
			id, owner_username,
			animal, breed, age_group, gender,
			compatibility, description, image_url,
			status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		l.ID,
		l.OwnerUsername,
		string(l.Animal),
		l.Breed,
		string(l.AgeGroup),
		string(l.Gender),
		joinCompat(l.Compatibility),
		l.Description,
		l.ImageURL,
		string(l.Status),
		l.CreatedAt,
	)
	return err
}

func (r *ListingsRepo) Update(ctx context.Context, l listings.Listing) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE listings
		SET
			animal = $2,
			breed = $3,
			age_group = $4,
			gender = $5,
			compatibility = $6,
			description = $7,
			image_url = $8,
			status = $9
		WHERE id = $1
	`,
		l.ID,
		string(l.Animal),
		l.Breed,
		string(l.AgeGroup),
		string(l.Gender),
		joinCompat(l.Compatibility),
		l.Description,
		l.ImageURL,
		string(l.Status),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return listings.ErrNotFound
	}
	return nil
}

func scanListing(scan func(dest ...any) error) (listings.Listing, error) {
	var l listings.Listing
	var animal, ageGroup, gender, status, compat string

	if err := scan(
		&l.ID,
		&l.OwnerUsername,
		&animal,
		&l.Breed,
		&ageGroup,
		&gender,
		&compat,
		&l.Description,
		&l.ImageURL,
		&status,
		&l.CreatedAt,
	); err != nil {
		return listings.Listing{}, err
	}

	l.Animal = listings.Animal(animal)
	l.AgeGroup = listings.AgeGroup(ageGroup)
	l.Gender = listings.Gender(gender)
	l.Status = listings.Status(status)
	l.Compatibility = splitCompat(compat)
	return l, nil
}

// compatibility se guarda como CSV en una columna text; el set es chico y
// ya viene deduplicado desde el validador.
func joinCompat(tags []listings.CompatTag) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ",")
}

func splitCompat(csv string) []listings.CompatTag {
	out := make([]listings.CompatTag, 0)
	for _, p := range strings.Split(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, listings.CompatTag(p))
		}
	}
	return out
}
