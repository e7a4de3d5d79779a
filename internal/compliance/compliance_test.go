package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		required  int
		want      Status
	}{
		{"full year", 180, 180, StatusOnTrack},
		{"over completion", 200, 180, StatusOnTrack},
		{"95 percent exact", 171, 180, StatusOnTrack},
		{"just below 95", 170, 180, StatusNeedsAttention},
		{"85 percent exact", 153, 180, StatusNeedsAttention},
		{"just below 85", 152, 180, StatusAtRisk},
		{"83 percent", 150, 180, StatusAtRisk},
		{"75 percent exact", 135, 180, StatusAtRisk},
		{"just below 75", 134, 180, StatusNonCompliant},
		{"nothing completed", 0, 180, StatusNonCompliant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.completed, tt.required))
		})
	}
}

func TestClassifyZeroRequired(t *testing.T) {
	// Must never divide by zero; percentage is defined as 0.
	for _, completed := range []int{0, 1, 180, 10000} {
		assert.Equal(t, StatusNonCompliant, Classify(completed, 0))
	}
	assert.Equal(t, StatusNonCompliant, Classify(10, -5))
}

func TestClassifyNegativeCompletedClampsToZero(t *testing.T) {
	assert.Equal(t, 0, Percent(-3, 180))
	assert.Equal(t, StatusNonCompliant, Classify(-3, 180))
}

func TestClassifyMonotonic(t *testing.T) {
	// Adding completed days never worsens the status.
	rank := map[Status]int{
		StatusNonCompliant:   0,
		StatusAtRisk:         1,
		StatusNeedsAttention: 2,
		StatusOnTrack:        3,
	}
	prev := rank[Classify(0, 180)]
	for completed := 1; completed <= 200; completed++ {
		cur := rank[Classify(completed, 180)]
		assert.GreaterOrEqual(t, cur, prev, "completed=%d", completed)
		prev = cur
	}
	assert.Equal(t, StatusOnTrack, Classify(180, 180))
}

func TestPercentRounds(t *testing.T) {
	// 170/180 = 94.44 → 94; 153/180 = 85.0 exact.
	assert.Equal(t, 94, Percent(170, 180))
	assert.Equal(t, 85, Percent(153, 180))
	assert.Equal(t, 111, Percent(200, 180))
}

func TestTestingRequired(t *testing.T) {
	assert.True(t, TestingRequired("5"))
	assert.True(t, TestingRequired("7"))
	assert.True(t, TestingRequired("9"))
	assert.False(t, TestingRequired("3"))
	assert.False(t, TestingRequired("K"))
}
