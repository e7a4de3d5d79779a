package calendar

import (
	"testing"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGridShape(t *testing.T) {
	// September 2025 begins on a Monday; the grid starts Sunday Aug 31.
	grid := MonthGrid(2025, time.September, nil, day(2025, time.September, 15))

	require.Len(t, grid, GridSize)
	assert.Equal(t, "2025-08-31", grid[0].Date)
	assert.False(t, grid[0].IsCurrentMonth)
	assert.True(t, grid[0].IsWeekend)
	assert.Equal(t, "2025-09-01", grid[1].Date)
	assert.True(t, grid[1].IsCurrentMonth)

	var todays int
	for _, d := range grid {
		if d.IsToday {
			todays++
			assert.Equal(t, "2025-09-15", d.Date)
		}
	}
	assert.Equal(t, 1, todays)
}

func TestMonthGridStartsOnFirstWhenSunday(t *testing.T) {
	// June 2025 begins on a Sunday, so cell 0 is June 1.
	grid := MonthGrid(2025, time.June, nil, day(2025, time.June, 1))
	assert.Equal(t, "2025-06-01", grid[0].Date)
	assert.True(t, grid[0].IsCurrentMonth)
}

func TestDayStatusPartialPrecedence(t *testing.T) {
	// Three students on one day: present 4h, absent 0h, partial 2h.
	// Partial wins over mixed and absent hours are excluded from the total.
	date := day(2025, time.September, 10)
	records := []model.AttendanceRecord{
		{StudentID: 1, Date: date, Status: model.AttendancePresent, Hours: 4},
		{StudentID: 2, Date: date, Status: model.AttendanceAbsent, Hours: 0},
		{StudentID: 3, Date: date, Status: model.AttendancePartial, Hours: 2},
	}

	grid := MonthGrid(2025, time.September, records, date)
	var cell Day
	for _, d := range grid {
		if d.Date == "2025-09-10" {
			cell = d
		}
	}
	assert.Equal(t, DayPartial, cell.Status)
	assert.Equal(t, 6.0, cell.TotalHours)
	assert.Len(t, cell.Records, 3)
}

func TestDayStatusResolution(t *testing.T) {
	tests := []struct {
		name     string
		statuses []model.AttendanceStatus
		want     DayStatus
	}{
		{"no records", nil, DayNone},
		{"all present", []model.AttendanceStatus{model.AttendancePresent, model.AttendancePresent}, DayPresent},
		{"all absent", []model.AttendanceStatus{model.AttendanceAbsent}, DayAbsent},
		{"all partial", []model.AttendanceStatus{model.AttendancePartial, model.AttendancePartial}, DayPartial},
		{"present and excused", []model.AttendanceStatus{model.AttendancePresent, model.AttendanceExcused}, DayMixed},
		{"present and absent", []model.AttendanceStatus{model.AttendancePresent, model.AttendanceAbsent}, DayMixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []model.AttendanceRecord
			for _, s := range tt.statuses {
				records = append(records, model.AttendanceRecord{Status: s})
			}
			assert.Equal(t, tt.want, resolveStatus(records))
		})
	}
}
