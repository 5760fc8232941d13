package entity

import "time"

// PermissionStatus is the notification permission reported by the platform.
type PermissionStatus string

const (
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	PermissionUndetermined PermissionStatus = "undetermined"

	// PermissionUnsupported is reported on runtimes without a native
	// notification capability. It is not an error state.
	PermissionUnsupported PermissionStatus = "unsupported"
)

// NotificationContent is the rendered payload handed to the notification
// platform when a reminder is scheduled.
type NotificationContent struct {
	Title     string
	Body      string
	Sound     string // platform sound name, empty for silent
	Vibration []int  // vibration pattern in milliseconds, nil for none
	Priority  Priority
	Data      map[string]string // opaque payload for tap handlers
}

// ReminderDescriptor pairs notification content with the instant it
// should fire. It is the output of reminder computation.
type ReminderDescriptor struct {
	TaskID     string
	FiringTime time.Time
	Content    NotificationContent
}

// ScheduledReminder is a pending notification as reported back by the
// platform. Its ID is an opaque handle; once the reminder fires the ID is
// stale and must not be reused.
type ScheduledReminder struct {
	ID         string
	FiringTime time.Time
	Content    NotificationContent
}
