package repository

import (
	"context"
	"strconv"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GradeRepository handles grade data access.
type GradeRepository struct {
	pool *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(pool *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{pool: pool}
}

const gradeColumns = `g.id, g.assignment_id, g.student_id, g.score, g.percentage, g.letter_grade,
	g.points, g.max_points, g.notes, g.graded_date, g.created_at, g.updated_at,
	s.id, s.first_name, s.last_name, s.grade_level,
	a.id, a.subject_id, a.student_id, a.title, a.type, a.status, a.due_date, a.created_at, a.updated_at,
	sub.name`

func scanGrade(row interface{ Scan(...any) error }) (*model.Grade, error) {
	g := &model.Grade{Student: &model.StudentRef{}, Assignment: &model.Assignment{}}
	err := row.Scan(
		&g.ID, &g.AssignmentID, &g.StudentID, &g.Score, &g.Percentage, &g.LetterGrade,
		&g.Points, &g.MaxPoints, &g.Notes, &g.GradedDate, &g.CreatedAt, &g.UpdatedAt,
		&g.Student.ID, &g.Student.FirstName, &g.Student.LastName, &g.Student.GradeLevel,
		&g.Assignment.ID, &g.Assignment.SubjectID, &g.Assignment.StudentID, &g.Assignment.Title,
		&g.Assignment.Type, &g.Assignment.Status, &g.Assignment.DueDate, &g.Assignment.CreatedAt, &g.Assignment.UpdatedAt,
		&g.SubjectName,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

const gradeJoins = ` FROM grades g
	 JOIN students s ON s.id = g.student_id
	 JOIN assignments a ON a.id = g.assignment_id
	 JOIN subjects sub ON sub.id = a.subject_id`

// List retrieves a family's grades with resolved relations, newest first.
// Pass a studentID to narrow the listing.
func (r *GradeRepository) List(ctx context.Context, familyID int, studentID *int) ([]model.Grade, error) {
	query := `SELECT ` + gradeColumns + gradeJoins + ` WHERE s.family_id = $1`
	args := []any{familyID}
	if studentID != nil {
		args = append(args, *studentID)
		query += ` AND g.student_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY g.graded_date DESC NULLS LAST, g.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []model.Grade
	for rows.Next() {
		g, err := scanGrade(rows)
		if err != nil {
			return nil, err
		}
		grades = append(grades, *g)
	}
	return grades, rows.Err()
}

// GetByID retrieves a grade with resolved relations.
func (r *GradeRepository) GetByID(ctx context.Context, familyID, id int) (*model.Grade, error) {
	return scanGrade(r.pool.QueryRow(ctx,
		`SELECT `+gradeColumns+gradeJoins+` WHERE g.id = $1 AND s.family_id = $2`, id, familyID))
}

// ListByStudent retrieves a student's bare grades for stats computation.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Grade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, assignment_id, student_id, score, percentage, letter_grade, points, max_points, notes, graded_date, created_at, updated_at
		 FROM grades WHERE student_id = $1 ORDER BY graded_date DESC NULLS LAST`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []model.Grade
	for rows.Next() {
		var g model.Grade
		if err := rows.Scan(&g.ID, &g.AssignmentID, &g.StudentID, &g.Score, &g.Percentage, &g.LetterGrade,
			&g.Points, &g.MaxPoints, &g.Notes, &g.GradedDate, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// Create inserts a new grade.
func (r *GradeRepository) Create(ctx context.Context, g *model.Grade) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO grades (assignment_id, student_id, score, percentage, letter_grade, points, max_points, notes, graded_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		g.AssignmentID, g.StudentID, g.Score, g.Percentage, g.LetterGrade, g.Points, g.MaxPoints, g.Notes, g.GradedDate,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

// Update modifies a grade.
func (r *GradeRepository) Update(ctx context.Context, g *model.Grade) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE grades SET score = $1, percentage = $2, letter_grade = $3, points = $4, max_points = $5, notes = $6, graded_date = $7, updated_at = NOW()
		 WHERE id = $8`,
		g.Score, g.Percentage, g.LetterGrade, g.Points, g.MaxPoints, g.Notes, g.GradedDate, g.ID,
	)
	return err
}

// Delete removes a grade.
func (r *GradeRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	return err
}
