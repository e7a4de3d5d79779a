package repository

import (
	"context"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StudentRepository handles student roster data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByID retrieves a student by ID within a family.
func (r *StudentRepository) GetByID(ctx context.Context, familyID, id int) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, family_id, first_name, last_name, birth_date, grade_level, enrollment_date, created_at, updated_at
		 FROM students WHERE id = $1 AND family_id = $2`, id, familyID,
	).Scan(&s.ID, &s.FamilyID, &s.FirstName, &s.LastName, &s.BirthDate, &s.GradeLevel, &s.EnrollmentDate, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all students in a family, newest first.
func (r *StudentRepository) List(ctx context.Context, familyID int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, family_id, first_name, last_name, birth_date, grade_level, enrollment_date, created_at, updated_at
		 FROM students WHERE family_id = $1 ORDER BY created_at DESC`, familyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.FamilyID, &s.FirstName, &s.LastName, &s.BirthDate, &s.GradeLevel, &s.EnrollmentDate, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (family_id, first_name, last_name, birth_date, grade_level, enrollment_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		s.FamilyID, s.FirstName, s.LastName, s.BirthDate, s.GradeLevel, s.EnrollmentDate,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies a student's roster info.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET first_name = $1, last_name = $2, birth_date = $3, grade_level = $4, enrollment_date = $5, updated_at = NOW()
		 WHERE id = $6 AND family_id = $7`,
		s.FirstName, s.LastName, s.BirthDate, s.GradeLevel, s.EnrollmentDate, s.ID, s.FamilyID,
	)
	return err
}

// Delete removes a student from the roster.
func (r *StudentRepository) Delete(ctx context.Context, familyID, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1 AND family_id = $2`, id, familyID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
