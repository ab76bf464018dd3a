package domain

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusNew      TaskStatus = "New"
	TaskStatusProgress TaskStatus = "Progress"
	TaskStatusComplete TaskStatus = "Complete"
)

// ParseTaskStatus converts a raw string into a TaskStatus, returning an
// error for unknown values. Tasks move freely between the three board
// columns, so only the value itself is validated.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	switch status {
	case TaskStatusNew, TaskStatusProgress, TaskStatusComplete:
		return status, nil
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	AssigneeID  *int64     `json:"assigneeID,omitempty"`
	CreatedBy   int64      `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Version     int32      `json:"-"`
}
