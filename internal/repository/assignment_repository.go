package repository

import (
	"context"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssignmentRepository handles assignment data access.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// ListByStudent retrieves all of a student's assignments, newest first.
func (r *AssignmentRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Assignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, subject_id, student_id, title, type, status, due_date, created_at, updated_at
		 FROM assignments WHERE student_id = $1 ORDER BY created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.SubjectID, &a.StudentID, &a.Title, &a.Type, &a.Status, &a.DueDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Create inserts a new assignment.
func (r *AssignmentRepository) Create(ctx context.Context, a *model.Assignment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO assignments (subject_id, student_id, title, type, status, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.SubjectID, a.StudentID, a.Title, a.Type, a.Status, a.DueDate,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// Delete removes an assignment. Used by the grade cascade.
func (r *AssignmentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	return err
}
