package model

import "time"

// AttendanceStatus is the per-day attendance outcome for one student.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendancePartial AttendanceStatus = "PARTIAL"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// AttendanceRecord logs one student's instructional day. The (student, date)
// pair is unique; duplicates are rejected, never overwritten.
type AttendanceRecord struct {
	ID           int              `json:"id"`
	StudentID    int              `json:"student_id"`
	SchoolYearID int              `json:"school_year_id"`
	Date         time.Time        `json:"date"`
	Status       AttendanceStatus `json:"status"`
	Hours        float64          `json:"hours"`
	Notes        string           `json:"notes"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	Student      *StudentRef      `json:"student,omitempty"`
}

// CreateAttendanceRequest is the payload for logging an attendance day.
type CreateAttendanceRequest struct {
	StudentID    int     `json:"student_id" binding:"required"`
	SchoolYearID int     `json:"school_year_id" binding:"required"`
	Date         string  `json:"date" binding:"required,datetime=2006-01-02"`
	Status       string  `json:"status" binding:"omitempty,oneof=PRESENT ABSENT PARTIAL EXCUSED"`
	Hours        float64 `json:"hours" binding:"omitempty,min=0,max=24"`
	Notes        string  `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateAttendanceRequest updates an existing record by its natural key.
// Nil fields keep the stored value; a present field always overwrites, so
// hours can be set to 0 and notes can be cleared.
type UpdateAttendanceRequest struct {
	StudentID int      `json:"student_id" binding:"required"`
	Date      string   `json:"date" binding:"required,datetime=2006-01-02"`
	Status    *string  `json:"status" binding:"omitempty,oneof=PRESENT ABSENT PARTIAL EXCUSED"`
	Hours     *float64 `json:"hours" binding:"omitempty,min=0,max=24"`
	Notes     *string  `json:"notes" binding:"omitempty,max=1000"`
}
