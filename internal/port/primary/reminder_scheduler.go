package primary

import (
	"context"

	"github.com/taskpilot/remindd/internal/domain/entity"
)

// ReminderScheduler defines the primary port for reminder operations
// exposed to driving adapters (HTTP handlers, cron jobs, the library
// facade).
type ReminderScheduler interface {
	// EnsureReady checks notification permission, requesting it once if
	// undetermined, and registers the reminder channel. It never schedules
	// anything.
	EnsureReady(ctx context.Context) entity.PermissionStatus

	// Resync cancels every pending reminder and reschedules from the given
	// task list. The returned ids are diagnostic only. Overlapping resyncs
	// are not serialized: the last cancel-then-reschedule to complete wins,
	// so callers issuing rapid updates should debounce upstream.
	Resync(ctx context.Context, tasks []entity.Task, settings entity.ReminderSettings) ([]string, error)

	// ScheduleOne schedules a reminder for a single task without cancelling
	// anything. Returns the notification id, or "" when the task does not
	// qualify. Callers avoid duplicates by preferring Resync whenever a
	// stale reminder might exist for the task.
	ScheduleOne(ctx context.Context, task entity.Task, settings entity.ReminderSettings) (string, error)
}
