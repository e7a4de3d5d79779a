package repository

import (
	"context"
	"strconv"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssessmentRepository handles standardized assessment data access.
type AssessmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepository creates a new AssessmentRepository.
func NewAssessmentRepository(pool *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{pool: pool}
}

const assessmentColumns = `a.id, a.student_id, a.title, a.type, a.test_date, a.score, a.max_score,
	a.percentile, a.testing_year, a.notes, a.created_at, a.updated_at,
	s.id, s.first_name, s.last_name, s.grade_level`

func scanAssessment(row interface{ Scan(...any) error }) (*model.Assessment, error) {
	a := &model.Assessment{Student: &model.StudentRef{}}
	err := row.Scan(
		&a.ID, &a.StudentID, &a.Title, &a.Type, &a.TestDate, &a.Score, &a.MaxScore,
		&a.Percentile, &a.TestingYear, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		&a.Student.ID, &a.Student.FirstName, &a.Student.LastName, &a.Student.GradeLevel,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List retrieves a family's assessments, newest test date first. Pass a
// studentID to narrow the listing.
func (r *AssessmentRepository) List(ctx context.Context, familyID int, studentID *int) ([]model.Assessment, error) {
	query := `SELECT ` + assessmentColumns + `
		 FROM assessments a
		 JOIN students s ON s.id = a.student_id
		 WHERE s.family_id = $1`
	args := []any{familyID}
	if studentID != nil {
		args = append(args, *studentID)
		query += ` AND a.student_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY a.test_date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []model.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, *a)
	}
	return assessments, rows.Err()
}

// GetByID retrieves an assessment scoped to a family.
func (r *AssessmentRepository) GetByID(ctx context.Context, familyID, id int) (*model.Assessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx,
		`SELECT `+assessmentColumns+`
		 FROM assessments a
		 JOIN students s ON s.id = a.student_id
		 WHERE a.id = $1 AND s.family_id = $2`, id, familyID))
}

// Create inserts a new assessment.
func (r *AssessmentRepository) Create(ctx context.Context, a *model.Assessment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO assessments (student_id, title, type, test_date, score, max_score, percentile, testing_year, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		a.StudentID, a.Title, a.Type, a.TestDate, a.Score, a.MaxScore, a.Percentile, a.TestingYear, a.Notes,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// Update modifies an assessment.
func (r *AssessmentRepository) Update(ctx context.Context, a *model.Assessment) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE assessments SET title = $1, type = $2, test_date = $3, score = $4, max_score = $5, percentile = $6, testing_year = $7, notes = $8, updated_at = NOW()
		 WHERE id = $9`,
		a.Title, a.Type, a.TestDate, a.Score, a.MaxScore, a.Percentile, a.TestingYear, a.Notes, a.ID,
	)
	return err
}

// Delete removes an assessment.
func (r *AssessmentRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
