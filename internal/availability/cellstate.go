package availability

import (
	"slices"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

// CellState classifies one grid cell for rendering. The same three boolean
// facts (in the approved baseline, in the pending proposal, record status)
// map to six visually distinct states, so the classification lives here
// rather than being re-derived ad hoc at call sites.
type CellState string

const (
	// CellEmpty: nothing selected or proposed for this cell.
	CellEmpty CellState = "empty"
	// CellDraft: no record exists yet and the slot is in the local draft.
	CellDraft CellState = "draft"
	// CellInitialPending: first submission under review; the proposal
	// lives directly in the slots field and there is no baseline yet.
	CellInitialPending CellState = "initialPending"
	// CellApproved: record approved and the slot is part of the baseline.
	CellApproved CellState = "approved"
	// CellKeep: edit cycle in flight and the slot is in both the baseline
	// and the proposal.
	CellKeep CellState = "keep"
	// CellAdd: edit cycle in flight and the slot is only in the proposal.
	CellAdd CellState = "add"
	// CellRemove: edit cycle in flight and the slot is only in the
	// baseline, i.e. the user is asking to drop it.
	CellRemove CellState = "remove"
)

// DeriveCellState is the single classification point for a grid cell.
// record may be nil (no submission for the week yet), in which case the
// working selection decides between draft and empty.
func DeriveCellState(date string, index int32, record *domain.WeekAvailability, working map[string]bool) CellState {
	if record == nil {
		if working[EncodeSlotKey(date, index)] {
			return CellDraft
		}
		return CellEmpty
	}

	inBase := slices.Contains(record.Slots[date], index)

	if record.Status == domain.AvailabilityStatusApproved {
		if inBase {
			return CellApproved
		}
		return CellEmpty
	}

	// Status is pending. Without a populated proposal this is a first
	// submission still under review: slots holds the proposal itself.
	if !record.HasPendingProposal() {
		if inBase {
			return CellInitialPending
		}
		return CellEmpty
	}

	inProposed := slices.Contains(record.PendingSlots[date], index)
	switch {
	case inBase && inProposed:
		return CellKeep
	case inProposed:
		return CellAdd
	case inBase:
		return CellRemove
	default:
		return CellEmpty
	}
}
