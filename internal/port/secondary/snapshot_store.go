package secondary

import "github.com/taskpilot/remindd/internal/domain/entity"

// TaskSource provides the current snapshot of the host application's
// tasks. The host replaces the snapshot whenever its task set changes.
type TaskSource interface {
	// Tasks returns a copy of the current task snapshot.
	Tasks() []entity.Task
}

// SettingsSource provides the host's current reminder settings.
type SettingsSource interface {
	// Settings returns the current reminder settings.
	Settings() entity.ReminderSettings
}

// SnapshotStore is the writable store behind TaskSource and
// SettingsSource, used by driving adapters that accept host updates.
type SnapshotStore interface {
	TaskSource
	SettingsSource

	// ReplaceTasks swaps the task snapshot wholesale.
	ReplaceTasks(tasks []entity.Task)

	// UpdateSettings stores new reminder settings.
	UpdateSettings(settings entity.ReminderSettings)
}
