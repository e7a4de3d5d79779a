package repository

import (
	"context"
	"errors"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicateSchoolYear = errors.New("school year with this label already exists for the family")

// SchoolYearRepository handles school year data access.
type SchoolYearRepository struct {
	pool *pgxpool.Pool
}

// NewSchoolYearRepository creates a new SchoolYearRepository.
func NewSchoolYearRepository(pool *pgxpool.Pool) *SchoolYearRepository {
	return &SchoolYearRepository{pool: pool}
}

const schoolYearColumns = `id, family_id, year_label, start_date, end_date, days_required, created_at, updated_at`

func scanSchoolYear(row interface{ Scan(...any) error }) (*model.SchoolYear, error) {
	y := &model.SchoolYear{}
	err := row.Scan(&y.ID, &y.FamilyID, &y.YearLabel, &y.StartDate, &y.EndDate, &y.DaysRequired, &y.CreatedAt, &y.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return y, nil
}

// GetByID retrieves a school year by ID within a family.
func (r *SchoolYearRepository) GetByID(ctx context.Context, familyID, id int) (*model.SchoolYear, error) {
	return scanSchoolYear(r.pool.QueryRow(ctx,
		`SELECT `+schoolYearColumns+` FROM school_years WHERE id = $1 AND family_id = $2`, id, familyID))
}

// List retrieves all school years for a family, newest first.
func (r *SchoolYearRepository) List(ctx context.Context, familyID int) ([]model.SchoolYear, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+schoolYearColumns+` FROM school_years WHERE family_id = $1 ORDER BY start_date DESC`, familyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []model.SchoolYear
	for rows.Next() {
		y, err := scanSchoolYear(rows)
		if err != nil {
			return nil, err
		}
		years = append(years, *y)
	}
	return years, rows.Err()
}

// GetContaining returns the family's school year whose range contains date.
func (r *SchoolYearRepository) GetContaining(ctx context.Context, familyID int, date time.Time) (*model.SchoolYear, error) {
	return scanSchoolYear(r.pool.QueryRow(ctx,
		`SELECT `+schoolYearColumns+` FROM school_years
		 WHERE family_id = $1 AND start_date <= $2 AND end_date >= $2
		 ORDER BY start_date DESC LIMIT 1`, familyID, date))
}

// GetMostRecent returns the family's most recently started school year.
func (r *SchoolYearRepository) GetMostRecent(ctx context.Context, familyID int) (*model.SchoolYear, error) {
	return scanSchoolYear(r.pool.QueryRow(ctx,
		`SELECT `+schoolYearColumns+` FROM school_years
		 WHERE family_id = $1 ORDER BY start_date DESC LIMIT 1`, familyID))
}

// Create inserts a new school year. The (family, label) pair is unique.
func (r *SchoolYearRepository) Create(ctx context.Context, y *model.SchoolYear) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO school_years (family_id, year_label, start_date, end_date, days_required)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		y.FamilyID, y.YearLabel, y.StartDate, y.EndDate, y.DaysRequired,
	).Scan(&y.ID, &y.CreatedAt, &y.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSchoolYear
		}
		return err
	}
	return nil
}

// Update modifies a school year.
func (r *SchoolYearRepository) Update(ctx context.Context, y *model.SchoolYear) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE school_years SET year_label = $1, start_date = $2, end_date = $3, days_required = $4, updated_at = NOW()
		 WHERE id = $5 AND family_id = $6`,
		y.YearLabel, y.StartDate, y.EndDate, y.DaysRequired, y.ID, y.FamilyID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSchoolYear
		}
		return err
	}
	return nil
}

// Delete removes a school year.
func (r *SchoolYearRepository) Delete(ctx context.Context, familyID, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM school_years WHERE id = $1 AND family_id = $2`, id, familyID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
