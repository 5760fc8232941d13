package remind

import (
	"time"

	"github.com/taskpilot/remindd/internal/domain/entity"
)

// PermissionStatus is the notification permission reported by the platform.
type PermissionStatus string

const (
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	PermissionUndetermined PermissionStatus = "undetermined"
	PermissionUnsupported  PermissionStatus = "unsupported"
)

// Task is a host application task that may produce a reminder.
type Task struct {
	// ID is the host's unique identifier for the task
	ID string

	// Title is shown verbatim in the reminder body
	Title string

	// Priority is "high", "medium" or "low"; it only affects the
	// reminder's visual marker
	Priority string

	// Status is "pending", "in-progress" or "completed"; completed tasks
	// never produce a reminder
	Status string

	// ScheduledDate is the task's calendar date, e.g. "2024-03-10"
	ScheduledDate string

	// ScheduledTime is the 24-hour start time, e.g. "09:30"
	ScheduledTime string
}

// Settings controls whether and how far ahead of a task's start time its
// reminder fires.
type Settings struct {
	// Enabled is the master switch; when false a resync leaves zero
	// pending reminders
	Enabled bool

	// ReminderMinutes is the positive lead time before the task start
	ReminderMinutes int

	// SoundEnabled selects the platform default sound over silence
	SoundEnabled bool

	// VibrationEnabled selects the standard vibration pattern over none
	VibrationEnabled bool
}

// Reminder is a pending notification as reported by the platform.
type Reminder struct {
	ID         string
	FiringTime time.Time
	Title      string
	Body       string
	Priority   string
	Data       map[string]string
}

// toDomain converts a public Task to an internal domain entity.
func (t *Task) toDomain() entity.Task {
	return entity.Task{
		ID:            t.ID,
		Title:         t.Title,
		Priority:      entity.Priority(t.Priority),
		Status:        entity.Status(t.Status),
		ScheduledDate: t.ScheduledDate,
		ScheduledTime: t.ScheduledTime,
	}
}

// toDomain converts public Settings to internal domain settings.
func (s *Settings) toDomain() entity.ReminderSettings {
	return entity.ReminderSettings{
		Enabled:          s.Enabled,
		ReminderMinutes:  s.ReminderMinutes,
		SoundEnabled:     s.SoundEnabled,
		VibrationEnabled: s.VibrationEnabled,
	}
}
