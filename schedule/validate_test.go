package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameDayShifts(ranges ...[2]string) []Shift {
	date := NewDate(2026, 3, 9)
	shifts := make([]Shift, len(ranges))
	for i, r := range ranges {
		shifts[i] = Shift{
			ID:         ShiftID("existing"),
			EmployeeID: "emp-1",
			Date:       date,
			Start:      r[0],
			End:        r[1],
			Role:       RoleWaiter,
		}
	}
	return shifts
}

func TestValidateShift_NoConflicts(t *testing.T) {
	result, err := ValidateShift("09:00", "13:00", sameDayShifts([2]string{"14:00", "18:00"}))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateShift_OverlapIsError(t *testing.T) {
	// GIVEN: An existing 09:00-17:00 shift
	// WHEN: Scheduling 16:00-20:00 on top of it
	// THEN: An overlap error citing the existing times, and the result is invalid
	result, err := ValidateShift("16:00", "20:00", sameDayShifts([2]string{"09:00", "17:00"}))
	require.NoError(t, err)
	assert.False(t, result.IsValid())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "09:00-17:00")
}

func TestValidateShift_BackToBackIsAllowed(t *testing.T) {
	result, err := ValidateShift("17:00", "20:00", sameDayShifts([2]string{"09:00", "17:00"}))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
	assert.Empty(t, result.Warnings, "a zero gap is not a short break")
}

func TestValidateShift_ShortBreakAfterExisting(t *testing.T) {
	// 20 minutes after the existing shift ends: warning, still valid.
	result, err := ValidateShift("12:20", "18:00", sameDayShifts([2]string{"08:00", "12:00"}))
	require.NoError(t, err)
	assert.True(t, result.IsValid(), "warnings never block saving")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "20 min")
	assert.Contains(t, result.Warnings[0], "08:00-12:00")
}

func TestValidateShift_ShortBreakBeforeExisting(t *testing.T) {
	// Symmetric check: candidate ends 15 minutes before the existing start.
	result, err := ValidateShift("08:00", "13:45", sameDayShifts([2]string{"14:00", "20:00"}))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "15 min")
}

func TestValidateShift_SplitShiftWithDecentBreak(t *testing.T) {
	result, err := ValidateShift("18:00", "23:00", sameDayShifts([2]string{"08:00", "12:00"}))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
	assert.Empty(t, result.Warnings)
}

func TestValidateShift_MultipleExisting(t *testing.T) {
	existing := sameDayShifts([2]string{"08:00", "12:00"}, [2]string{"13:00", "17:00"})
	result, err := ValidateShift("11:00", "13:15", existing)
	require.NoError(t, err)
	assert.Len(t, result.Errors, 2, "candidate overlaps both existing shifts")
	assert.False(t, result.IsValid())
}

func TestValidateShift_MalformedCandidateFailsFast(t *testing.T) {
	_, err := ValidateShift("9am", "17:00", nil)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
