package secondary

import (
	"context"
	"time"

	"github.com/taskpilot/remindd/internal/domain/entity"
)

// NotificationPlatform defines the secondary port for the runtime's local
// notification capability. One implementation is selected at startup (real
// or no-op); callers never branch on platform identity themselves.
type NotificationPlatform interface {
	// Available reports whether the runtime has a native notification
	// capability. When false, every other operation is a no-op.
	Available() bool

	// Permission returns the current notification permission.
	Permission(ctx context.Context) (entity.PermissionStatus, error)

	// RequestPermission asks for notification permission once and returns
	// the resulting status.
	RequestPermission(ctx context.Context) (entity.PermissionStatus, error)

	// RegisterChannel registers a notification channel with the given
	// importance. Safe to call repeatedly.
	RegisterChannel(ctx context.Context, channelID, importance string) error

	// Schedule asks the platform to fire the content at firingTime and
	// returns an opaque notification id.
	Schedule(ctx context.Context, content entity.NotificationContent, firingTime time.Time) (string, error)

	// Cancel removes one pending notification by id.
	Cancel(ctx context.Context, id string) error

	// CancelAll removes every pending notification owned by this
	// application.
	CancelAll(ctx context.Context) error

	// ListScheduled returns all pending notifications. Diagnostic use only;
	// the scheduler never reconciles against it.
	ListScheduled(ctx context.Context) ([]entity.ScheduledReminder, error)
}
