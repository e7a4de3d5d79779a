package stats

import (
	"testing"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func rec(status model.AttendanceStatus) model.AttendanceRecord {
	return model.AttendanceRecord{Status: status}
}

func gradePct(p float64) model.Grade {
	return model.Grade{Percentage: &p}
}

func TestComputeEmptyInputs(t *testing.T) {
	agg := Compute(nil, nil, nil)
	assert.Zero(t, agg.TotalAttendanceDays)
	assert.Zero(t, agg.AttendancePercentage)
	assert.Zero(t, agg.CurrentStreak)
	assert.Zero(t, agg.AverageGrade)
	assert.Zero(t, agg.CompletedAssignments)
	assert.Zero(t, agg.TotalAssignments)
}

func TestStreakStopsAtFirstNonPresent(t *testing.T) {
	// Most-recent-first: present, present, partial, present → streak of 2.
	records := []model.AttendanceRecord{
		rec(model.AttendancePresent),
		rec(model.AttendancePresent),
		rec(model.AttendancePartial),
		rec(model.AttendancePresent),
	}
	agg := Compute(records, nil, nil)
	assert.Equal(t, 2, agg.CurrentStreak)
	// Partial still counts toward attended days.
	assert.Equal(t, 4, agg.TotalAttendanceDays)
	assert.InDelta(t, 100.0, agg.AttendancePercentage, 0.001)
}

func TestStreakBrokenByExcused(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(model.AttendanceExcused),
		rec(model.AttendancePresent),
	}
	agg := Compute(records, nil, nil)
	assert.Equal(t, 0, agg.CurrentStreak)
}

func TestAttendancePercentage(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(model.AttendancePresent),
		rec(model.AttendanceAbsent),
		rec(model.AttendancePartial),
	}
	agg := Compute(records, nil, nil)
	assert.Equal(t, 2, agg.TotalAttendanceDays)
	assert.InDelta(t, 66.666, agg.AttendancePercentage, 0.01)
}

func TestAverageGradeIgnoresUngraded(t *testing.T) {
	grades := []model.Grade{
		gradePct(90),
		{Percentage: nil},
		gradePct(80),
	}
	agg := Compute(nil, grades, nil)
	assert.InDelta(t, 85.0, agg.AverageGrade, 0.001)
}

func TestAssignmentCounts(t *testing.T) {
	assignments := []model.Assignment{
		{Status: model.AssignmentGraded},
		{Status: model.AssignmentCompleted},
		{Status: model.AssignmentAssigned},
		{Status: model.AssignmentDraft},
	}
	agg := Compute(nil, nil, assignments)
	assert.Equal(t, 2, agg.CompletedAssignments)
	assert.Equal(t, 4, agg.TotalAssignments)
}
