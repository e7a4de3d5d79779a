package model

import "time"

// Subject represents a curriculum subject scoped to a school year.
type Subject struct {
	ID           int       `json:"id"`
	SchoolYearID int       `json:"school_year_id"`
	Name         string    `json:"name"`
	GradeLevel   string    `json:"grade_level"`
	Curriculum   string    `json:"curriculum"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Lessons      []Lesson  `json:"lessons,omitempty"`
}

// CreateSubjectRequest is the payload for creating a subject.
type CreateSubjectRequest struct {
	SchoolYearID int    `json:"school_year_id" binding:"required"`
	Name         string `json:"name" binding:"required,min=1,max=100"`
	GradeLevel   string `json:"grade_level" binding:"omitempty,max=20"`
	Curriculum   string `json:"curriculum" binding:"omitempty,max=100"`
}

// UpdateSubjectRequest is the payload for updating a subject.
type UpdateSubjectRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	GradeLevel string `json:"grade_level" binding:"omitempty,max=20"`
	Curriculum string `json:"curriculum" binding:"omitempty,max=100"`
}
