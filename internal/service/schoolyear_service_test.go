package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcademicYearSpan(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantLabel string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "autumn belongs to the new year",
			now:       time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			wantLabel: "2025-2026",
			wantStart: "2025-08-15",
			wantEnd:   "2026-05-31",
		},
		{
			name:      "spring belongs to the previous year",
			now:       time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			wantLabel: "2025-2026",
			wantStart: "2025-08-15",
			wantEnd:   "2026-05-31",
		},
		{
			name:      "july pivots to the new year",
			now:       time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
			wantLabel: "2026-2027",
			wantStart: "2026-08-15",
			wantEnd:   "2027-05-31",
		},
		{
			name:      "june still belongs to the old year",
			now:       time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
			wantLabel: "2025-2026",
			wantStart: "2025-08-15",
			wantEnd:   "2026-05-31",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, start, end := AcademicYearSpan(tt.now)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantStart, start.Format(time.DateOnly))
			assert.Equal(t, tt.wantEnd, end.Format(time.DateOnly))
		})
	}
}
