package domain

import "time"

type TimeEntry struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"userID"`
	Date       time.Time  `json:"date"`
	ClockIn    *time.Time `json:"clockIn"`
	ClockOut   *time.Time `json:"clockOut"`
	TotalHours *float64   `json:"totalHours"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// IsOpen reports whether the entry represents a user who is currently
// clocked in.
func (te *TimeEntry) IsOpen() bool {
	return te.ClockIn != nil && te.ClockOut == nil
}
