package repository

import (
	"context"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LessonRepository handles lesson plan data access.
type LessonRepository struct {
	pool *pgxpool.Pool
}

// NewLessonRepository creates a new LessonRepository.
func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

// GetByID retrieves a lesson by ID.
func (r *LessonRepository) GetByID(ctx context.Context, id int) (*model.Lesson, error) {
	l := &model.Lesson{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, subject_id, lesson_number, title, estimated_hours, description, created_at, updated_at
		 FROM lessons WHERE id = $1`, id,
	).Scan(&l.ID, &l.SubjectID, &l.LessonNumber, &l.Title, &l.EstimatedHours, &l.Description, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// List retrieves a family's lessons in curriculum order, optionally
// narrowed to one subject. Family scoping goes through the subject's
// school year.
func (r *LessonRepository) List(ctx context.Context, familyID int, subjectID *int) ([]model.Lesson, error) {
	query := `SELECT l.id, l.subject_id, l.lesson_number, l.title, l.estimated_hours, l.description, l.created_at, l.updated_at
		 FROM lessons l
		 JOIN subjects sub ON sub.id = l.subject_id
		 JOIN school_years y ON y.id = sub.school_year_id
		 WHERE y.family_id = $1`
	args := []any{familyID}
	if subjectID != nil {
		query += ` AND l.subject_id = $2`
		args = append(args, *subjectID)
	}
	query += ` ORDER BY l.lesson_number ASC, l.created_at ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []model.Lesson
	for rows.Next() {
		var l model.Lesson
		if err := rows.Scan(&l.ID, &l.SubjectID, &l.LessonNumber, &l.Title, &l.EstimatedHours, &l.Description, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// ListBySubject retrieves a subject's lessons in curriculum order.
func (r *LessonRepository) ListBySubject(ctx context.Context, subjectID int) ([]model.Lesson, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, subject_id, lesson_number, title, estimated_hours, description, created_at, updated_at
		 FROM lessons WHERE subject_id = $1 ORDER BY lesson_number ASC`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []model.Lesson
	for rows.Next() {
		var l model.Lesson
		if err := rows.Scan(&l.ID, &l.SubjectID, &l.LessonNumber, &l.Title, &l.EstimatedHours, &l.Description, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// Create inserts a new lesson.
func (r *LessonRepository) Create(ctx context.Context, l *model.Lesson) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO lessons (subject_id, lesson_number, title, estimated_hours, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		l.SubjectID, l.LessonNumber, l.Title, l.EstimatedHours, l.Description,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// Update modifies a lesson.
func (r *LessonRepository) Update(ctx context.Context, l *model.Lesson) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE lessons SET lesson_number = $1, title = $2, estimated_hours = $3, description = $4, updated_at = NOW()
		 WHERE id = $5`,
		l.LessonNumber, l.Title, l.EstimatedHours, l.Description, l.ID,
	)
	return err
}

// Delete removes a lesson.
func (r *LessonRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
