package model

// StudentSummary pairs a student with their current-year aggregates for
// the dashboard report.
type StudentSummary struct {
	Student Student      `json:"student"`
	Stats   StudentStats `json:"stats"`
}

// DashboardReport is the family-wide overview served by /reports/dashboard.
type DashboardReport struct {
	TotalStudents        int              `json:"total_students"`
	SchoolYearID         int              `json:"school_year_id,omitempty"`
	YearLabel            string           `json:"year_label,omitempty"`
	DaysCompleted        int              `json:"days_completed"`
	DaysRequired         int              `json:"days_required"`
	CompliancePercentage int              `json:"compliance_percentage"`
	ComplianceStatus     string           `json:"compliance_status"`
	TotalHours           float64          `json:"total_hours"`
	AverageGrade         float64          `json:"average_grade"`
	Students             []StudentSummary `json:"students"`
}
