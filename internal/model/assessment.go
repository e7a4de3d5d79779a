package model

import "time"

// Assessment is a standardized or diagnostic test result, tracked per
// student independently of subjects and assignments.
type Assessment struct {
	ID          int         `json:"id"`
	StudentID   int         `json:"student_id"`
	Title       string      `json:"title"`
	Type        string      `json:"type"`
	TestDate    time.Time   `json:"test_date"`
	Score       *float64    `json:"score,omitempty"`
	MaxScore    *float64    `json:"max_score,omitempty"`
	Percentile  *float64    `json:"percentile,omitempty"`
	TestingYear string      `json:"testing_year"`
	Notes       string      `json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Student     *StudentRef `json:"student,omitempty"`
}

// CreateAssessmentRequest is the payload for recording an assessment.
type CreateAssessmentRequest struct {
	StudentID   int      `json:"student_id" binding:"required"`
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Type        string   `json:"type" binding:"required,min=1,max=50"`
	TestDate    string   `json:"test_date" binding:"required,datetime=2006-01-02"`
	Score       *float64 `json:"score" binding:"omitempty,min=0"`
	MaxScore    *float64 `json:"max_score" binding:"omitempty,min=0"`
	Percentile  *float64 `json:"percentile" binding:"omitempty,min=0,max=100"`
	TestingYear string   `json:"testing_year" binding:"omitempty,max=20"`
	Notes       string   `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateAssessmentRequest is the payload for updating an assessment.
type UpdateAssessmentRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Type        string   `json:"type" binding:"required,min=1,max=50"`
	TestDate    string   `json:"test_date" binding:"required,datetime=2006-01-02"`
	Score       *float64 `json:"score" binding:"omitempty,min=0"`
	MaxScore    *float64 `json:"max_score" binding:"omitempty,min=0"`
	Percentile  *float64 `json:"percentile" binding:"omitempty,min=0,max=100"`
	TestingYear string   `json:"testing_year" binding:"omitempty,max=20"`
	Notes       string   `json:"notes" binding:"omitempty,max=1000"`
}
