package service

import (
	"testing"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestMergeUpdateNilFieldsKeepStoredValues(t *testing.T) {
	existing := &model.AttendanceRecord{
		Status: model.AttendancePresent,
		Hours:  4,
		Notes:  "field trip",
	}
	status, hours, notes := mergeUpdate(existing, &model.UpdateAttendanceRequest{})
	assert.Equal(t, model.AttendancePresent, status)
	assert.Equal(t, 4.0, hours)
	assert.Equal(t, "field trip", notes)
}

func TestMergeUpdateExplicitZeroHours(t *testing.T) {
	// Zero is a real value, not an omitted field.
	existing := &model.AttendanceRecord{Status: model.AttendancePartial, Hours: 2}
	_, hours, _ := mergeUpdate(existing, &model.UpdateAttendanceRequest{Hours: floatPtr(0)})
	assert.Equal(t, 0.0, hours)
}

func TestMergeUpdateClearsNotes(t *testing.T) {
	existing := &model.AttendanceRecord{Status: model.AttendancePresent, Hours: 4, Notes: "typo"}
	_, _, notes := mergeUpdate(existing, &model.UpdateAttendanceRequest{Notes: strPtr("")})
	assert.Equal(t, "", notes)
}

func TestMergeUpdateAbsentForcesZeroHours(t *testing.T) {
	existing := &model.AttendanceRecord{Status: model.AttendancePresent, Hours: 4}
	status, hours, _ := mergeUpdate(existing, &model.UpdateAttendanceRequest{
		Status: strPtr("ABSENT"),
		Hours:  floatPtr(6),
	})
	assert.Equal(t, model.AttendanceAbsent, status)
	assert.Equal(t, 0.0, hours)
}

func TestMergeUpdateOverwritesEachField(t *testing.T) {
	existing := &model.AttendanceRecord{Status: model.AttendancePresent, Hours: 4, Notes: "old"}
	status, hours, notes := mergeUpdate(existing, &model.UpdateAttendanceRequest{
		Status: strPtr("PARTIAL"),
		Hours:  floatPtr(2.5),
		Notes:  strPtr("half day"),
	})
	assert.Equal(t, model.AttendancePartial, status)
	assert.Equal(t, 2.5, hours)
	assert.Equal(t, "half day", notes)
}
