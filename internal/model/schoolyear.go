package model

import "time"

// SchoolYear is a bounded date range within which attendance and curriculum
// activity is scoped. At most one per (family, year label).
type SchoolYear struct {
	ID           int       `json:"id"`
	FamilyID     int       `json:"family_id"`
	YearLabel    string    `json:"year_label"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	DaysRequired int       `json:"days_required"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateSchoolYearRequest is the payload for creating a school year.
type CreateSchoolYearRequest struct {
	YearLabel    string `json:"year_label" binding:"required,min=4,max=20"`
	StartDate    string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" binding:"required,datetime=2006-01-02"`
	DaysRequired int    `json:"days_required" binding:"omitempty,min=1,max=366"`
}

// UpdateSchoolYearRequest is the payload for updating a school year.
type UpdateSchoolYearRequest struct {
	YearLabel    string `json:"year_label" binding:"required,min=4,max=20"`
	StartDate    string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" binding:"required,datetime=2006-01-02"`
	DaysRequired int    `json:"days_required" binding:"required,min=1,max=366"`
}
