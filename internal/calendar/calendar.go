// Package calendar builds the month view grid for the attendance calendar.
package calendar

import (
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/model"
)

// GridSize is the fixed number of cells in a month view (6 full weeks).
const GridSize = 42

// DayStatus is the aggregated attendance outcome for one calendar day
// across all students.
type DayStatus string

const (
	DayPresent DayStatus = "present"
	DayAbsent  DayStatus = "absent"
	DayPartial DayStatus = "partial"
	DayMixed   DayStatus = "mixed"
	DayNone    DayStatus = "none"
)

// Day is one cell of the month grid.
type Day struct {
	Date           string                   `json:"date"`
	DayOfMonth     int                      `json:"day_of_month"`
	IsCurrentMonth bool                     `json:"is_current_month"`
	IsToday        bool                     `json:"is_today"`
	IsWeekend      bool                     `json:"is_weekend"`
	Records        []model.AttendanceRecord `json:"records"`
	TotalHours     float64                  `json:"total_hours"`
	Status         DayStatus                `json:"status"`
}

// MonthGrid returns the 42-cell grid for (year, month), starting from the
// Sunday on or before the first of the month. The today parameter keeps the
// output deterministic for callers and tests.
func MonthGrid(year int, month time.Month, records []model.AttendanceRecord, today time.Time) []Day {
	byDate := make(map[string][]model.AttendanceRecord)
	for _, r := range records {
		key := r.Date.Format(time.DateOnly)
		byDate[key] = append(byDate[key], r)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	todayKey := today.Format(time.DateOnly)

	days := make([]Day, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := start.AddDate(0, 0, i)
		key := date.Format(time.DateOnly)
		dayRecords := byDate[key]

		days = append(days, Day{
			Date:           key,
			DayOfMonth:     date.Day(),
			IsCurrentMonth: date.Month() == month,
			IsToday:        key == todayKey,
			IsWeekend:      date.Weekday() == time.Sunday || date.Weekday() == time.Saturday,
			Records:        dayRecords,
			TotalHours:     totalHours(dayRecords),
			Status:         resolveStatus(dayRecords),
		})
	}
	return days
}

// resolveStatus aggregates per-student records into one day status.
// Precedence: unanimous present/absent first, then any-partial, then mixed.
// The partial-over-mixed ordering is deliberate and must not change.
func resolveStatus(records []model.AttendanceRecord) DayStatus {
	if len(records) == 0 {
		return DayNone
	}

	allPresent, allAbsent, anyPartial := true, true, false
	for _, r := range records {
		if r.Status != model.AttendancePresent {
			allPresent = false
		}
		if r.Status != model.AttendanceAbsent {
			allAbsent = false
		}
		if r.Status == model.AttendancePartial {
			anyPartial = true
		}
	}

	switch {
	case allPresent:
		return DayPresent
	case allAbsent:
		return DayAbsent
	case anyPartial:
		return DayPartial
	default:
		return DayMixed
	}
}

// totalHours sums hours for the day, excluding absent records.
func totalHours(records []model.AttendanceRecord) float64 {
	var total float64
	for _, r := range records {
		if r.Status != model.AttendanceAbsent {
			total += r.Hours
		}
	}
	return total
}
