package model

import "time"

// AssignmentType categorizes graded work.
type AssignmentType string

const (
	AssignmentHomework AssignmentType = "HOMEWORK"
	AssignmentQuiz     AssignmentType = "QUIZ"
	AssignmentTest     AssignmentType = "TEST"
	AssignmentProject  AssignmentType = "PROJECT"
)

// AssignmentStatus is the lifecycle state of an assignment.
type AssignmentStatus string

const (
	AssignmentDraft     AssignmentStatus = "DRAFT"
	AssignmentAssigned  AssignmentStatus = "ASSIGNED"
	AssignmentCompleted AssignmentStatus = "COMPLETED"
	AssignmentGraded    AssignmentStatus = "GRADED"
)

// Assignment is a piece of student work within a subject.
type Assignment struct {
	ID        int              `json:"id"`
	SubjectID int              `json:"subject_id"`
	StudentID int              `json:"student_id"`
	Title     string           `json:"title"`
	Type      AssignmentType   `json:"type"`
	Status    AssignmentStatus `json:"status"`
	DueDate   *time.Time       `json:"due_date,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
