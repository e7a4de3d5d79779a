package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateAttendance is returned when a (student, date) pair is already
// marked. The first record always wins; callers must use the update path to
// change it.
var ErrDuplicateAttendance = errors.New("attendance record already exists for this student and date")

// AttendanceFilter narrows attendance listings. Nil fields are ignored.
type AttendanceFilter struct {
	StudentID    *int
	Date         *time.Time
	SchoolYearID *int
}

// AttendanceRepository handles attendance record data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

const attendanceColumns = `a.id, a.student_id, a.school_year_id, a.date, a.status, a.hours, a.notes, a.created_at, a.updated_at,
	s.id, s.first_name, s.last_name, s.grade_level`

func scanAttendance(row interface{ Scan(...any) error }) (*model.AttendanceRecord, error) {
	rec := &model.AttendanceRecord{Student: &model.StudentRef{}}
	err := row.Scan(
		&rec.ID, &rec.StudentID, &rec.SchoolYearID, &rec.Date, &rec.Status, &rec.Hours, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.Student.ID, &rec.Student.FirstName, &rec.Student.LastName, &rec.Student.GradeLevel,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List retrieves a family's attendance records, newest first, honoring the
// optional filter fields.
func (r *AttendanceRepository) List(ctx context.Context, familyID int, filter AttendanceFilter) ([]model.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + `
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id
		 WHERE s.family_id = $1`
	args := []any{familyID}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += ` AND a.student_id = $` + strconv.Itoa(len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += ` AND a.date = $` + strconv.Itoa(len(args))
	}
	if filter.SchoolYearID != nil {
		args = append(args, *filter.SchoolYearID)
		query += ` AND a.school_year_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY a.date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// GetByStudentAndDate retrieves one record by its natural key.
func (r *AttendanceRepository) GetByStudentAndDate(ctx context.Context, studentID int, date time.Time) (*model.AttendanceRecord, error) {
	return scanAttendance(r.pool.QueryRow(ctx,
		`SELECT `+attendanceColumns+`
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id
		 WHERE a.student_id = $1 AND a.date = $2`, studentID, date))
}

// Create inserts a new attendance record. A duplicate (student, date) pair
// surfaces as ErrDuplicateAttendance via the unique constraint; there is
// deliberately no upsert here.
func (r *AttendanceRepository) Create(ctx context.Context, rec *model.AttendanceRecord) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO attendance_records (student_id, school_year_id, date, status, hours, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		rec.StudentID, rec.SchoolYearID, rec.Date, rec.Status, rec.Hours, rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateAttendance
		}
		return err
	}
	return nil
}

// UpdateByStudentAndDate modifies a record addressed by its natural key.
func (r *AttendanceRepository) UpdateByStudentAndDate(ctx context.Context, studentID int, date time.Time, status model.AttendanceStatus, hours float64, notes string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE attendance_records SET status = $1, hours = $2, notes = $3, updated_at = NOW()
		 WHERE student_id = $4 AND date = $5`,
		status, hours, notes, studentID, date,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByStudentAndDate removes a record addressed by its natural key.
func (r *AttendanceRepository) DeleteByStudentAndDate(ctx context.Context, studentID int, date time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM attendance_records WHERE student_id = $1 AND date = $2`, studentID, date)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByStudentAndYear retrieves one student's records for a school year,
// newest first. Used by the stats computation.
func (r *AttendanceRepository) ListByStudentAndYear(ctx context.Context, studentID, schoolYearID int) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, school_year_id, date, status, hours, notes, created_at, updated_at
		 FROM attendance_records
		 WHERE student_id = $1 AND school_year_id = $2
		 ORDER BY date DESC`, studentID, schoolYearID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.SchoolYearID, &rec.Date, &rec.Status, &rec.Hours, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListRange retrieves a family's records within [from, to] inclusive,
// without joined student details. Used by the calendar grid.
func (r *AttendanceRepository) ListRange(ctx context.Context, familyID int, from, to time.Time) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.student_id, a.school_year_id, a.date, a.status, a.hours, a.notes, a.created_at, a.updated_at
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id
		 WHERE s.family_id = $1 AND a.date BETWEEN $2 AND $3
		 ORDER BY a.date ASC`, familyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.SchoolYearID, &rec.Date, &rec.Status, &rec.Hours, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountCompletedDays counts the distinct dates with at least one present or
// partial record across the family's students within a school year. This is
// the day count the compliance classifier consumes.
func (r *AttendanceRepository) CountCompletedDays(ctx context.Context, familyID, schoolYearID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT a.date)
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id
		 WHERE s.family_id = $1 AND a.school_year_id = $2 AND a.status IN ('PRESENT', 'PARTIAL')`,
		familyID, schoolYearID,
	).Scan(&count)
	return count, err
}
