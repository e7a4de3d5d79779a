package repository

import (
	"context"
	"errors"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicateEmail = errors.New("guardian with this email already exists")

// GuardianRepository handles guardian account data access.
type GuardianRepository struct {
	pool *pgxpool.Pool
}

// NewGuardianRepository creates a new GuardianRepository.
func NewGuardianRepository(pool *pgxpool.Pool) *GuardianRepository {
	return &GuardianRepository{pool: pool}
}

// GetByID retrieves a guardian by ID.
func (r *GuardianRepository) GetByID(ctx context.Context, id int) (*model.Guardian, error) {
	g := &model.Guardian{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, family_id, name, email, password_hash, created_at, updated_at
		 FROM guardians WHERE id = $1`, id,
	).Scan(&g.ID, &g.FamilyID, &g.Name, &g.Email, &g.PasswordHash, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// GetByEmail retrieves a guardian by their unique email.
func (r *GuardianRepository) GetByEmail(ctx context.Context, email string) (*model.Guardian, error) {
	g := &model.Guardian{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, family_id, name, email, password_hash, created_at, updated_at
		 FROM guardians WHERE email = $1`, email,
	).Scan(&g.ID, &g.FamilyID, &g.Name, &g.Email, &g.PasswordHash, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Create inserts a new guardian.
func (r *GuardianRepository) Create(ctx context.Context, g *model.Guardian) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO guardians (family_id, name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		g.FamilyID, g.Name, g.Email, g.PasswordHash,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}
