package model

import "time"

// ComplianceRecord tracks a family's progress against the state requirement
// for one school year. days_completed is maintained by the compliance
// worker from attendance writes.
type ComplianceRecord struct {
	ID                  int       `json:"id"`
	FamilyID            int       `json:"family_id"`
	SchoolYearID        int       `json:"school_year_id"`
	DaysCompleted       int       `json:"days_completed"`
	DaysRequired        int       `json:"days_required"`
	NoticeOfIntentFiled bool      `json:"notice_of_intent_filed"`
	TestingCompleted    bool      `json:"testing_completed"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// UpdateComplianceRequest toggles the paperwork flags on a compliance record.
// Day counts are never set directly; they are derived from attendance.
type UpdateComplianceRequest struct {
	NoticeOfIntentFiled *bool `json:"notice_of_intent_filed" binding:"omitempty"`
	TestingCompleted    *bool `json:"testing_completed" binding:"omitempty"`
}
