// Package grading maps numeric percentages to letter grades.
package grading

import "math"

// Letter returns the letter grade for a percentage. Each band is inclusive
// on its lower bound; anything below 60 (including negatives) is an F.
func Letter(percentage float64) string {
	switch {
	case percentage >= 97:
		return "A+"
	case percentage >= 93:
		return "A"
	case percentage >= 90:
		return "A-"
	case percentage >= 87:
		return "B+"
	case percentage >= 83:
		return "B"
	case percentage >= 80:
		return "B-"
	case percentage >= 77:
		return "C+"
	case percentage >= 73:
		return "C"
	case percentage >= 70:
		return "C-"
	case percentage >= 67:
		return "D+"
	case percentage >= 63:
		return "D"
	case percentage >= 60:
		return "D-"
	default:
		return "F"
	}
}

// Round1 rounds to one decimal place for display. Aggregates keep full
// precision until the response boundary.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
