package http

import (
	"context"
	"time"

	"github.com/taskpilot/remindd/internal/domain/entity"
)

// mockScheduler implements primary.ReminderScheduler for handler tests.
type mockScheduler struct {
	resyncFunc func(ctx context.Context, tasks []entity.Task, settings entity.ReminderSettings) ([]string, error)

	resyncCalls []resyncCall
}

type resyncCall struct {
	tasks    []entity.Task
	settings entity.ReminderSettings
}

func (m *mockScheduler) EnsureReady(ctx context.Context) entity.PermissionStatus {
	return entity.PermissionGranted
}

func (m *mockScheduler) Resync(ctx context.Context, tasks []entity.Task, settings entity.ReminderSettings) ([]string, error) {
	m.resyncCalls = append(m.resyncCalls, resyncCall{tasks: tasks, settings: settings})
	if m.resyncFunc != nil {
		return m.resyncFunc(ctx, tasks, settings)
	}
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, "notif-"+task.ID)
	}
	return ids, nil
}

func (m *mockScheduler) ScheduleOne(ctx context.Context, task entity.Task, settings entity.ReminderSettings) (string, error) {
	return "notif-" + task.ID, nil
}

// mockStore implements secondary.SnapshotStore for handler tests.
type mockStore struct {
	tasks    []entity.Task
	settings entity.ReminderSettings
}

func newMockStore() *mockStore {
	return &mockStore{settings: entity.DefaultSettings()}
}

func (m *mockStore) Tasks() []entity.Task {
	return m.tasks
}

func (m *mockStore) ReplaceTasks(tasks []entity.Task) {
	m.tasks = tasks
}

func (m *mockStore) Settings() entity.ReminderSettings {
	return m.settings
}

func (m *mockStore) UpdateSettings(settings entity.ReminderSettings) {
	m.settings = settings
}

// mockListPlatform implements secondary.NotificationPlatform; only
// ListScheduled matters for the diagnostics handler.
type mockListPlatform struct {
	reminders []entity.ScheduledReminder
	listErr   error
}

func (m *mockListPlatform) Available() bool { return true }

func (m *mockListPlatform) Permission(ctx context.Context) (entity.PermissionStatus, error) {
	return entity.PermissionGranted, nil
}

func (m *mockListPlatform) RequestPermission(ctx context.Context) (entity.PermissionStatus, error) {
	return entity.PermissionGranted, nil
}

func (m *mockListPlatform) RegisterChannel(ctx context.Context, channelID, importance string) error {
	return nil
}

func (m *mockListPlatform) Schedule(ctx context.Context, content entity.NotificationContent, firingTime time.Time) (string, error) {
	return "", nil
}

func (m *mockListPlatform) Cancel(ctx context.Context, id string) error { return nil }

func (m *mockListPlatform) CancelAll(ctx context.Context) error { return nil }

func (m *mockListPlatform) ListScheduled(ctx context.Context) ([]entity.ScheduledReminder, error) {
	return m.reminders, m.listErr
}

// mockHealthChecker implements secondary.HealthChecker.
type mockHealthChecker struct {
	name string
	err  error
}

func (m *mockHealthChecker) Name() string { return m.name }

func (m *mockHealthChecker) Check(ctx context.Context) error { return m.err }
