// Package compliance maps completed instructional days against a state
// requirement into a status label.
package compliance

import "math"

// Status is the compliance classification for a school year.
type Status string

const (
	StatusOnTrack        Status = "ON_TRACK"
	StatusNeedsAttention Status = "NEEDS_ATTENTION"
	StatusAtRisk         Status = "AT_RISK"
	StatusNonCompliant   Status = "NON_COMPLIANT"
)

// Percent returns the whole-number completion percentage of required days.
// Negative inputs are clamped to zero; a non-positive requirement yields 0
// rather than dividing by zero.
func Percent(completed, required int) int {
	if completed < 0 {
		completed = 0
	}
	if required <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(required) * 100))
}

// Classify maps a completed-day count against the required total.
// Over-completion stays ON_TRACK; required ≤ 0 classifies as NON_COMPLIANT.
func Classify(completed, required int) Status {
	pct := Percent(completed, required)
	switch {
	case pct >= 95:
		return StatusOnTrack
	case pct >= 85:
		return StatusNeedsAttention
	case pct >= 75:
		return StatusAtRisk
	default:
		return StatusNonCompliant
	}
}

// TestingRequired reports whether the grade level is one of Tennessee's
// standardized-testing grades.
func TestingRequired(gradeLevel string) bool {
	switch gradeLevel {
	case "5", "7", "9":
		return true
	}
	return false
}
