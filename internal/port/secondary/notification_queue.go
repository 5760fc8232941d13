package secondary

import (
	"context"

	"github.com/taskpilot/remindd/internal/domain/entity"
)

// NotificationQueue is the dispatcher-side port for draining reminders
// whose firing time has passed. Fetched reminders are removed from the
// pending set; their ids are stale afterwards.
type NotificationQueue interface {
	// FetchDue retrieves and removes up to limit reminders whose firing
	// time is not in the future.
	FetchDue(ctx context.Context, limit int) ([]entity.ScheduledReminder, error)
}
