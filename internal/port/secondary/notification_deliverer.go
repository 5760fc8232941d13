package secondary

import (
	"context"

	"github.com/taskpilot/remindd/internal/domain/entity"
)

// NotificationDeliverer defines the secondary port for pushing a fired
// reminder to its delivery surface (e.g., Kafka topic, webhook).
type NotificationDeliverer interface {
	// Deliver sends one fired reminder.
	Deliver(ctx context.Context, reminder entity.ScheduledReminder) error

	// Close releases any resources held by the deliverer.
	Close() error
}
