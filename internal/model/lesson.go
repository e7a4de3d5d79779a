package model

import "time"

// Lesson is one ordered unit of a subject's curriculum plan.
type Lesson struct {
	ID             int       `json:"id"`
	SubjectID      int       `json:"subject_id"`
	LessonNumber   int       `json:"lesson_number"`
	Title          string    `json:"title"`
	EstimatedHours float64   `json:"estimated_hours"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateLessonRequest is the payload for adding a lesson to a subject.
type CreateLessonRequest struct {
	SubjectID      int     `json:"subject_id" binding:"required"`
	LessonNumber   int     `json:"lesson_number" binding:"required,min=1"`
	Title          string  `json:"title" binding:"required,min=1,max=200"`
	EstimatedHours float64 `json:"estimated_hours" binding:"omitempty,min=0,max=24"`
	Description    string  `json:"description" binding:"omitempty,max=1000"`
}

// UpdateLessonRequest is the payload for updating a lesson.
type UpdateLessonRequest struct {
	LessonNumber   int     `json:"lesson_number" binding:"required,min=1"`
	Title          string  `json:"title" binding:"required,min=1,max=200"`
	EstimatedHours float64 `json:"estimated_hours" binding:"omitempty,min=0,max=24"`
	Description    string  `json:"description" binding:"omitempty,max=1000"`
}
