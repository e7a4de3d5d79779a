package model

import "time"

// Grade records the scored outcome of one assignment for one student.
// Deleting a grade also deletes its assignment.
type Grade struct {
	ID           int        `json:"id"`
	AssignmentID int        `json:"assignment_id"`
	StudentID    int        `json:"student_id"`
	Score        *float64   `json:"score,omitempty"`
	Percentage   *float64   `json:"percentage,omitempty"`
	LetterGrade  string     `json:"letter_grade"`
	Points       *float64   `json:"points,omitempty"`
	MaxPoints    *float64   `json:"max_points,omitempty"`
	Notes        string     `json:"notes"`
	GradedDate   *time.Time `json:"graded_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Student     *StudentRef `json:"student,omitempty"`
	Assignment  *Assignment `json:"assignment,omitempty"`
	SubjectName string      `json:"subject_name,omitempty"`
}

// CreateGradeRequest creates a subject (if needed), an assignment, and the
// grade in one call. The letter grade is derived from the percentage when
// the client omits it.
type CreateGradeRequest struct {
	StudentID       int      `json:"student_id" binding:"required"`
	AssignmentTitle string   `json:"assignment_title" binding:"required,min=1,max=200"`
	AssignmentType  string   `json:"assignment_type" binding:"required,oneof=HOMEWORK QUIZ TEST PROJECT"`
	Subject         string   `json:"subject" binding:"required,min=1,max=100"`
	Points          *float64 `json:"points" binding:"omitempty,min=0"`
	MaxPoints       *float64 `json:"max_points" binding:"omitempty,min=0"`
	Percentage      *float64 `json:"percentage" binding:"omitempty,min=0,max=200"`
	LetterGrade     string   `json:"letter_grade" binding:"omitempty,max=2"`
	Notes           string   `json:"notes" binding:"omitempty,max=1000"`
	GradedDate      string   `json:"graded_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateGradeRequest is the payload for updating an existing grade.
type UpdateGradeRequest struct {
	Score       *float64 `json:"score" binding:"omitempty,min=0"`
	Percentage  *float64 `json:"percentage" binding:"omitempty,min=0,max=200"`
	LetterGrade string   `json:"letter_grade" binding:"omitempty,max=2"`
	Points      *float64 `json:"points" binding:"omitempty,min=0"`
	MaxPoints   *float64 `json:"max_points" binding:"omitempty,min=0"`
	Notes       string   `json:"notes" binding:"omitempty,max=1000"`
	GradedDate  string   `json:"graded_date" binding:"omitempty,datetime=2006-01-02"`
}
