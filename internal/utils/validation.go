package utils

import (
	"errors"
	"time"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

// ValidateLeaveRequestDates checks the apply-leave form invariants before
// anything is persisted.
func ValidateLeaveRequestDates(req *domain.LeaveRequest, now time.Time) error {
	if req.ToDate.Before(req.FromDate) {
		return errors.New("leave end date cannot be before the start date")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.FromDate.Before(today) {
		return errors.New("leave cannot start in the past")
	}

	return nil
}

// ValidateManualTimeEntry checks a manually recorded clock-in/out pair.
func ValidateManualTimeEntry(entry *domain.TimeEntry) error {
	if entry.ClockIn == nil || entry.ClockOut == nil {
		return errors.New("manual entries need both clock-in and clock-out times")
	}

	if !entry.ClockOut.After(*entry.ClockIn) {
		return errors.New("clock-out time must be after clock-in time")
	}

	return nil
}

// ValidateCostFields checks the cross-field rules the validator tags
// cannot express: variable costs need a unit, fixed costs must not carry
// volume figures.
func ValidateCostFields(cost *domain.Cost) error {
	switch cost.Type {
	case domain.CostTypeFixed:
		if cost.ExpectedVolume != nil || cost.ActualVolume != nil {
			return errors.New("fixed costs cannot have volume figures")
		}
	case domain.CostTypeVariable:
		if cost.Unit == nil {
			return errors.New("variable costs need a unit")
		}
	default:
		return errors.New("unknown cost type")
	}

	return nil
}
