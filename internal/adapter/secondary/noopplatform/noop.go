// Package noopplatform provides the NotificationPlatform used on runtimes
// without a native notification capability. Selecting it at startup keeps
// the scheduler free of platform branching: every operation succeeds and
// does nothing.
package noopplatform

import (
	"context"
	"time"

	"github.com/taskpilot/remindd/internal/domain/entity"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// Platform is the no-op notification platform.
type Platform struct{}

// New creates the no-op platform.
func New() secondary.NotificationPlatform {
	return Platform{}
}

// Available reports that no notification capability exists here.
func (Platform) Available() bool {
	return false
}

// Permission reports the fixed unsupported status.
func (Platform) Permission(context.Context) (entity.PermissionStatus, error) {
	return entity.PermissionUnsupported, nil
}

// RequestPermission reports the fixed unsupported status without prompting.
func (Platform) RequestPermission(context.Context) (entity.PermissionStatus, error) {
	return entity.PermissionUnsupported, nil
}

// RegisterChannel does nothing.
func (Platform) RegisterChannel(context.Context, string, string) error {
	return nil
}

// Schedule does nothing and returns an empty id.
func (Platform) Schedule(context.Context, entity.NotificationContent, time.Time) (string, error) {
	return "", nil
}

// Cancel does nothing.
func (Platform) Cancel(context.Context, string) error {
	return nil
}

// CancelAll does nothing.
func (Platform) CancelAll(context.Context) error {
	return nil
}

// ListScheduled reports an empty pending set.
func (Platform) ListScheduled(context.Context) ([]entity.ScheduledReminder, error) {
	return nil, nil
}
