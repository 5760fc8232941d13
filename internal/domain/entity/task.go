package entity

import (
	"fmt"
	"time"
)

// Priority is the task's urgency tier. It affects only the visual marker
// on the reminder, never whether one is scheduled.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Status is the task's lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Task is a user task as supplied by the host application. The scheduler
// consumes tasks but does not own or persist them.
type Task struct {
	ID            string
	Title         string
	Priority      Priority
	Status        Status
	ScheduledDate string // ISO date, e.g. "2024-03-10"
	ScheduledTime string // 24-hour clock, e.g. "09:30"
}

const startLayout = "2006-01-02 15:04"

// StartTime combines ScheduledDate and ScheduledTime into the task's
// absolute start instant in the given location. Date arithmetic downstream
// must happen on this instant, never on the string fields.
func (t *Task) StartTime(loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation(startLayout, t.ScheduledDate+" "+t.ScheduledTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing task schedule: %w", err)
	}
	return start, nil
}

// IsCompleted reports whether the task is finished and must never
// produce a reminder.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
