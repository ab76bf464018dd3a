package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

func TestValidateLeaveRequestDates(t *testing.T) {
	now := time.Date(2026, time.January, 7, 15, 0, 0, 0, time.UTC)
	day := func(d int) time.Time {
		return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	require.NoError(t, ValidateLeaveRequestDates(&domain.LeaveRequest{FromDate: day(8), ToDate: day(10)}, now))
	// starting today is fine even though the clock has already passed midnight
	require.NoError(t, ValidateLeaveRequestDates(&domain.LeaveRequest{FromDate: day(7), ToDate: day(7)}, now))

	assert.Error(t, ValidateLeaveRequestDates(&domain.LeaveRequest{FromDate: day(10), ToDate: day(8)}, now))
	assert.Error(t, ValidateLeaveRequestDates(&domain.LeaveRequest{FromDate: day(6), ToDate: day(8)}, now))
}

func TestValidateManualTimeEntry(t *testing.T) {
	clockIn := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(8 * time.Hour)

	require.NoError(t, ValidateManualTimeEntry(&domain.TimeEntry{ClockIn: &clockIn, ClockOut: &clockOut}))

	assert.Error(t, ValidateManualTimeEntry(&domain.TimeEntry{ClockIn: &clockIn}))
	assert.Error(t, ValidateManualTimeEntry(&domain.TimeEntry{ClockOut: &clockOut}))
	assert.Error(t, ValidateManualTimeEntry(&domain.TimeEntry{ClockIn: &clockOut, ClockOut: &clockIn}))
	assert.Error(t, ValidateManualTimeEntry(&domain.TimeEntry{ClockIn: &clockIn, ClockOut: &clockIn}))
}

func TestValidateCostFields(t *testing.T) {
	hour := domain.CostUnitHour
	volume := int32(10)

	fixed := &domain.Cost{Type: domain.CostTypeFixed, Amount: decimal.NewFromInt(100)}
	require.NoError(t, ValidateCostFields(fixed))

	fixed.ActualVolume = &volume
	assert.Error(t, ValidateCostFields(fixed))

	variable := &domain.Cost{Type: domain.CostTypeVariable, Amount: decimal.NewFromInt(30)}
	assert.Error(t, ValidateCostFields(variable))

	variable.Unit = &hour
	require.NoError(t, ValidateCostFields(variable))

	assert.Error(t, ValidateCostFields(&domain.Cost{Type: "weird"}))
}
