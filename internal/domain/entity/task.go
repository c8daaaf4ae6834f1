package entity

import (
	"strings"
	"time"
)

// Task is a single to-do item. DueTime is kept exactly as the user entered it
// (a timezone-naive local date-time string) and parsed on demand.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	DueTime     *string   `json:"due_time"`
	Notified60  bool      `json:"notified_60"`
	Notified5   bool      `json:"notified_5"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasDueTime reports whether the task carries a non-blank due time.
func (t *Task) HasDueTime() bool {
	return t.DueTime != nil && strings.TrimSpace(*t.DueTime) != ""
}

// TaskInput holds the user-editable fields for creating a task.
type TaskInput struct {
	Title       string
	Description *string
	DueTime     *string
}

// TaskUpdate replaces title, description and due time. The remaining fields
// are only applied when set.
type TaskUpdate struct {
	Title       string
	Description *string
	DueTime     *string
	Completed   *bool
	Notified60  *bool
	Notified5   *bool
}

// TaskFilter narrows and orders a task listing.
type TaskFilter struct {
	Completed *bool
	HasDue    *bool
	Search    string
	SortBy    string
	Order     string
	Limit     int `validate:"min=1,max=500"`
	Offset    int `validate:"min=0"`
}
