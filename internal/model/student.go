package model

import "time"

// Student represents a homeschooled student in a family's roster.
type Student struct {
	ID             int       `json:"id"`
	FamilyID       int       `json:"family_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	BirthDate      time.Time `json:"birth_date"`
	GradeLevel     string    `json:"grade_level"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StudentRef is the compact student shape embedded in related resources.
type StudentRef struct {
	ID         int    `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	GradeLevel string `json:"grade_level"`
}

// CreateStudentRequest is the payload for adding a student to the roster.
type CreateStudentRequest struct {
	FirstName      string `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string `json:"last_name" binding:"required,min=1,max=100"`
	BirthDate      string `json:"birth_date" binding:"required,datetime=2006-01-02"`
	GradeLevel     string `json:"grade_level" binding:"required,max=20"`
	EnrollmentDate string `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateStudentRequest is the payload for updating a student.
type UpdateStudentRequest struct {
	FirstName      string `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string `json:"last_name" binding:"required,min=1,max=100"`
	BirthDate      string `json:"birth_date" binding:"required,datetime=2006-01-02"`
	GradeLevel     string `json:"grade_level" binding:"required,max=20"`
	EnrollmentDate string `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
}

// StudentStats is the aggregate statistics payload for a single student.
type StudentStats struct {
	TotalAttendanceDays  int     `json:"total_attendance_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	CurrentStreak        int     `json:"current_streak"`
	AverageGrade         float64 `json:"average_grade"`
	CompletedAssignments int     `json:"completed_assignments"`
	TotalAssignments     int     `json:"total_assignments"`
}
