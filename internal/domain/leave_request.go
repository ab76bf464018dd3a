package domain

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

type LeaveRequest struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"userID"`
	FromDate    time.Time   `json:"fromDate"`
	ToDate      time.Time   `json:"toDate"`
	Description string      `json:"description"`
	Status      LeaveStatus `json:"status"`
	AppliedAt   time.Time   `json:"appliedAt"`
	Version     int32       `json:"-"`
}
