package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

func TestDeriveCellStateWithoutRecord(t *testing.T) {
	working := map[string]bool{"2026-01-05-3": true}

	assert.Equal(t, CellDraft, DeriveCellState("2026-01-05", 3, nil, working))
	assert.Equal(t, CellEmpty, DeriveCellState("2026-01-05", 4, nil, working))
	assert.Equal(t, CellEmpty, DeriveCellState("2026-01-06", 3, nil, working))
}

func TestDeriveCellStateApproved(t *testing.T) {
	record := &domain.WeekAvailability{
		Slots:  map[string][]int32{"2026-01-05": {3, 5}},
		Status: domain.AvailabilityStatusApproved,
	}

	assert.Equal(t, CellApproved, DeriveCellState("2026-01-05", 3, record, nil))
	assert.Equal(t, CellEmpty, DeriveCellState("2026-01-05", 4, record, nil))
}

func TestDeriveCellStateInitialPending(t *testing.T) {
	record := &domain.WeekAvailability{
		Slots:  map[string][]int32{"2026-01-05": {3}},
		Status: domain.AvailabilityStatusPending,
	}

	assert.Equal(t, CellInitialPending, DeriveCellState("2026-01-05", 3, record, nil))
	assert.Equal(t, CellEmpty, DeriveCellState("2026-01-05", 4, record, nil))
}

func TestDeriveCellStateEditCycle(t *testing.T) {
	record := &domain.WeekAvailability{
		Slots:        map[string][]int32{"2026-01-05": {3, 5}},
		PendingSlots: map[string][]int32{"2026-01-05": {3, 7}},
		Status:       domain.AvailabilityStatusPending,
	}

	assert.Equal(t, CellKeep, DeriveCellState("2026-01-05", 3, record, nil))
	assert.Equal(t, CellRemove, DeriveCellState("2026-01-05", 5, record, nil))
	assert.Equal(t, CellAdd, DeriveCellState("2026-01-05", 7, record, nil))
	assert.Equal(t, CellEmpty, DeriveCellState("2026-01-05", 9, record, nil))
}

func TestDeriveCellStateWorkingSelectionIgnoredWithRecord(t *testing.T) {
	record := &domain.WeekAvailability{
		Slots:  map[string][]int32{"2026-01-05": {3}},
		Status: domain.AvailabilityStatusApproved,
	}
	working := map[string]bool{"2026-01-05-4": true}

	// a server record always wins over leftover draft state
	assert.Equal(t, CellEmpty, DeriveCellState("2026-01-05", 4, record, working))
}
