package repository

import (
	"context"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubjectRepository handles curriculum subject data access.
type SubjectRepository struct {
	pool *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository.
func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

// GetByID retrieves a subject by ID, scoped to the family via its school year.
func (r *SubjectRepository) GetByID(ctx context.Context, familyID, id int) (*model.Subject, error) {
	s := &model.Subject{}
	err := r.pool.QueryRow(ctx,
		`SELECT sub.id, sub.school_year_id, sub.name, sub.grade_level, sub.curriculum, sub.created_at, sub.updated_at
		 FROM subjects sub
		 JOIN school_years y ON y.id = sub.school_year_id
		 WHERE sub.id = $1 AND y.family_id = $2`, id, familyID,
	).Scan(&s.ID, &s.SchoolYearID, &s.Name, &s.GradeLevel, &s.Curriculum, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByName retrieves a subject by name within a school year.
func (r *SubjectRepository) GetByName(ctx context.Context, schoolYearID int, name string) (*model.Subject, error) {
	s := &model.Subject{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, school_year_id, name, grade_level, curriculum, created_at, updated_at
		 FROM subjects WHERE school_year_id = $1 AND name = $2`, schoolYearID, name,
	).Scan(&s.ID, &s.SchoolYearID, &s.Name, &s.GradeLevel, &s.Curriculum, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves a family's subjects ordered by name, optionally narrowed
// to one school year.
func (r *SubjectRepository) List(ctx context.Context, familyID int, schoolYearID *int) ([]model.Subject, error) {
	query := `SELECT sub.id, sub.school_year_id, sub.name, sub.grade_level, sub.curriculum, sub.created_at, sub.updated_at
		 FROM subjects sub
		 JOIN school_years y ON y.id = sub.school_year_id
		 WHERE y.family_id = $1`
	args := []any{familyID}
	if schoolYearID != nil {
		query += ` AND sub.school_year_id = $2`
		args = append(args, *schoolYearID)
	}
	query += ` ORDER BY sub.name ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.SchoolYearID, &s.Name, &s.GradeLevel, &s.Curriculum, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// Create inserts a new subject.
func (r *SubjectRepository) Create(ctx context.Context, s *model.Subject) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO subjects (school_year_id, name, grade_level, curriculum)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		s.SchoolYearID, s.Name, s.GradeLevel, s.Curriculum,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies a subject.
func (r *SubjectRepository) Update(ctx context.Context, s *model.Subject) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE subjects SET name = $1, grade_level = $2, curriculum = $3, updated_at = NOW() WHERE id = $4`,
		s.Name, s.GradeLevel, s.Curriculum, s.ID,
	)
	return err
}

// Delete removes a subject.
func (r *SubjectRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	return err
}
