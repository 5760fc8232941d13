package service

import (
	"context"
	"fmt"
	"time"

	"github.com/taskpilot/remindd/internal/domain/entity"
)

// mockPlatform implements secondary.NotificationPlatform for testing.
type mockPlatform struct {
	available      bool
	permissionFunc func(ctx context.Context) (entity.PermissionStatus, error)
	requestFunc    func(ctx context.Context) (entity.PermissionStatus, error)
	scheduleFunc   func(ctx context.Context, content entity.NotificationContent, firingTime time.Time) (string, error)
	cancelAllFunc  func(ctx context.Context) error

	permissionCalls int
	requestCalls    int
	cancelAllCalls  int
	cancelCalls     []string
	registerCalls   []string
	scheduleCalls   []scheduleCall
}

type scheduleCall struct {
	Content    entity.NotificationContent
	FiringTime time.Time
	Err        error
}

func newMockPlatform() *mockPlatform {
	return &mockPlatform{available: true}
}

func (m *mockPlatform) Available() bool {
	return m.available
}

func (m *mockPlatform) Permission(ctx context.Context) (entity.PermissionStatus, error) {
	m.permissionCalls++
	if m.permissionFunc != nil {
		return m.permissionFunc(ctx)
	}
	return entity.PermissionGranted, nil
}

func (m *mockPlatform) RequestPermission(ctx context.Context) (entity.PermissionStatus, error) {
	m.requestCalls++
	if m.requestFunc != nil {
		return m.requestFunc(ctx)
	}
	return entity.PermissionGranted, nil
}

func (m *mockPlatform) RegisterChannel(_ context.Context, channelID, _ string) error {
	m.registerCalls = append(m.registerCalls, channelID)
	return nil
}

func (m *mockPlatform) Schedule(ctx context.Context, content entity.NotificationContent, firingTime time.Time) (string, error) {
	var (
		id  string
		err error
	)
	if m.scheduleFunc != nil {
		id, err = m.scheduleFunc(ctx, content, firingTime)
	} else {
		id = fmt.Sprintf("notif-%d", len(m.scheduleCalls)+1)
	}
	m.scheduleCalls = append(m.scheduleCalls, scheduleCall{
		Content:    content,
		FiringTime: firingTime,
		Err:        err,
	})
	return id, err
}

func (m *mockPlatform) Cancel(_ context.Context, id string) error {
	m.cancelCalls = append(m.cancelCalls, id)
	return nil
}

func (m *mockPlatform) CancelAll(ctx context.Context) error {
	m.cancelAllCalls++
	if m.cancelAllFunc != nil {
		return m.cancelAllFunc(ctx)
	}
	return nil
}

func (m *mockPlatform) ListScheduled(context.Context) ([]entity.ScheduledReminder, error) {
	return nil, nil
}

// successfulScheduleCalls returns only the calls that did not return an error.
func (m *mockPlatform) successfulScheduleCalls() []scheduleCall {
	var result []scheduleCall
	for _, c := range m.scheduleCalls {
		if c.Err == nil {
			result = append(result, c)
		}
	}
	return result
}

// futureTask returns a pending task starting tomorrow at 09:30.
func futureTask(id string) entity.Task {
	return entity.Task{
		ID:            id,
		Title:         "Task " + id,
		Priority:      entity.PriorityMedium,
		Status:        entity.StatusPending,
		ScheduledDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		ScheduledTime: "09:30",
	}
}
