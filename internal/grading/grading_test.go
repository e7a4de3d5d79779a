package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterBoundaries(t *testing.T) {
	// Every boundary maps to the band it opens.
	bounds := []struct {
		pct  float64
		want string
	}{
		{97, "A+"}, {93, "A"}, {90, "A-"},
		{87, "B+"}, {83, "B"}, {80, "B-"},
		{77, "C+"}, {73, "C"}, {70, "C-"},
		{67, "D+"}, {63, "D"}, {60, "D-"},
	}
	for _, b := range bounds {
		assert.Equal(t, b.want, Letter(b.pct), "at %.0f", b.pct)
		// Just under the bound falls into the next band down.
		assert.NotEqual(t, b.want, Letter(b.pct-0.1), "below %.0f", b.pct)
	}
}

func TestLetterTotality(t *testing.T) {
	assert.Equal(t, "F", Letter(59.9))
	assert.Equal(t, "F", Letter(0))
	assert.Equal(t, "F", Letter(-40))
	assert.Equal(t, "A+", Letter(100))
	assert.Equal(t, "A+", Letter(150))
	assert.Equal(t, "A-", Letter(90.0))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 83.3, Round1(83.333333))
	assert.Equal(t, 95.0, Round1(95.0))
	assert.Equal(t, 66.7, Round1(66.66))
	assert.Equal(t, 0.0, Round1(0))
}
