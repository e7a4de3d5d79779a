// Package stats computes per-student aggregate statistics from already
// fetched attendance, grade, and assignment histories. All functions are
// pure; rounding happens at the response boundary, not here.
package stats

import "github.com/homeroomhq/homeroom-backend/internal/model"

// Aggregates holds the raw (unrounded) statistics for one student.
type Aggregates struct {
	TotalAttendanceDays  int
	AttendancePercentage float64
	CurrentStreak        int
	AverageGrade         float64
	CompletedAssignments int
	TotalAssignments     int
}

// Compute derives aggregates from a student's histories. Attendance records
// must be ordered most-recent-first; the streak walks that order and stops
// at the first record that is not exactly PRESENT (PARTIAL and EXCUSED
// break it). Empty inputs produce zero values, never a division by zero.
func Compute(records []model.AttendanceRecord, grades []model.Grade, assignments []model.Assignment) Aggregates {
	var agg Aggregates

	for _, r := range records {
		if r.Status == model.AttendancePresent || r.Status == model.AttendancePartial {
			agg.TotalAttendanceDays++
		}
	}
	if len(records) > 0 {
		agg.AttendancePercentage = float64(agg.TotalAttendanceDays) / float64(len(records)) * 100
	}

	for _, r := range records {
		if r.Status != model.AttendancePresent {
			break
		}
		agg.CurrentStreak++
	}

	var sum float64
	var graded int
	for _, g := range grades {
		if g.Percentage == nil {
			continue
		}
		sum += *g.Percentage
		graded++
	}
	if graded > 0 {
		agg.AverageGrade = sum / float64(graded)
	}

	agg.TotalAssignments = len(assignments)
	for _, a := range assignments {
		if a.Status == model.AssignmentCompleted || a.Status == model.AssignmentGraded {
			agg.CompletedAssignments++
		}
	}

	return agg
}
