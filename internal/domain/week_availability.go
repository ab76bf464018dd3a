package domain

import "time"

type AvailabilityStatus string

const (
	AvailabilityStatusPending  AvailabilityStatus = "pending"
	AvailabilityStatusApproved AvailabilityStatus = "approved"
)

// WeekAvailability is the durable record for one (user, week start) pair.
// Slots holds the approved baseline; PendingSlots holds a proposed change
// set and is only meaningful while Status is pending. Both map an ISO date
// string to the sorted slot indices selected on that day.
type WeekAvailability struct {
	ID           string             `json:"id"`
	UserID       int64              `json:"userID"`
	WeekStart    string             `json:"weekStart"`
	Slots        map[string][]int32 `json:"slots"`
	PendingSlots map[string][]int32 `json:"pendingSlots"`
	Status       AvailabilityStatus `json:"status"`
	SubmittedAt  time.Time          `json:"submittedAt"`
	Version      int32              `json:"-"`
}

// HasPendingProposal reports whether the record carries an edit proposal,
// i.e. this is a change request on top of a baseline rather than a first
// submission still under review.
func (wa *WeekAvailability) HasPendingProposal() bool {
	return wa.Status == AvailabilityStatusPending && len(wa.PendingSlots) > 0
}
