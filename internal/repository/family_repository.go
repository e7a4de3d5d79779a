package repository

import (
	"context"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FamilyRepository handles family data access.
type FamilyRepository struct {
	pool *pgxpool.Pool
}

// NewFamilyRepository creates a new FamilyRepository.
func NewFamilyRepository(pool *pgxpool.Pool) *FamilyRepository {
	return &FamilyRepository{pool: pool}
}

// GetByID retrieves a family by its ID.
func (r *FamilyRepository) GetByID(ctx context.Context, id int) (*model.Family, error) {
	f := &model.Family{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, state, created_at, updated_at FROM families WHERE id = $1`, id,
	).Scan(&f.ID, &f.Name, &f.State, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create inserts a new family.
func (r *FamilyRepository) Create(ctx context.Context, f *model.Family) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO families (name, state) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		f.Name, f.State,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}
