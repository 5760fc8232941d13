package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/domain"
	"github.com/taskpilot/remindd/internal/domain/entity"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// SchedulerService orchestrates reminder computation against the
// notification platform. It is stateless between calls: tasks and settings
// are passed in each time, and no notification-id map survives a resync —
// every resync cancels everything and starts fresh.
type SchedulerService struct {
	platform  secondary.NotificationPlatform
	logger    *zap.Logger
	bootstrap sync.Once
}

// NewSchedulerService creates a SchedulerService with its dependencies
// injected.
func NewSchedulerService(platform secondary.NotificationPlatform, logger *zap.Logger) *SchedulerService {
	return &SchedulerService{
		platform: platform,
		logger:   logger.Named("reminder-scheduler"),
	}
}

// EnsureReady checks notification permission, requesting it once if
// undetermined, and registers the high-importance reminder channel when
// granted. Safe to call on every start; it never schedules anything.
func (s *SchedulerService) EnsureReady(ctx context.Context) entity.PermissionStatus {
	if !s.platform.Available() {
		return entity.PermissionUnsupported
	}

	status, err := s.platform.Permission(ctx)
	if err != nil {
		s.logger.Warn("permission query failed", zap.Error(err))
		return entity.PermissionUndetermined
	}

	if status == entity.PermissionUndetermined {
		status, err = s.platform.RequestPermission(ctx)
		if err != nil {
			s.logger.Warn("permission request failed", zap.Error(err))
			return entity.PermissionUndetermined
		}
	}

	if status == entity.PermissionGranted {
		if err := s.platform.RegisterChannel(ctx, domain.ChannelID, domain.ChannelImportanceHigh); err != nil {
			// Not fatal: scheduling still works on platforms without channels.
			s.logger.Warn("channel registration failed", zap.Error(err))
		}
	}

	return status
}

// ready runs the permission bootstrap once per session, before the first
// schedule attempt.
func (s *SchedulerService) ready(ctx context.Context) {
	s.bootstrap.Do(func() {
		status := s.EnsureReady(ctx)
		s.logger.Info("notification bootstrap",
			zap.String("permission", string(status)),
		)
	})
}

// Resync reconciles the pending notification set with the given task list:
// cancel everything, then reschedule each qualifying task. The cancel step
// is unconditional so that disabled settings leave zero pending reminders.
// Platform failures are contained per task; the only error Resync itself
// returns is invalid settings. See the primary port for the overlapping
// resync limitation.
func (s *SchedulerService) Resync(ctx context.Context, tasks []entity.Task, settings entity.ReminderSettings) ([]string, error) {
	if !s.platform.Available() {
		return nil, nil
	}

	s.ready(ctx)

	if err := s.platform.CancelAll(ctx); err != nil {
		// Degrade rather than abort: stale reminders are cleaned up by the
		// next successful resync.
		s.logger.Error("cancel-all failed", zap.Error(err))
	}

	if !settings.Enabled {
		s.logger.Info("reminders disabled, pending notifications cleared")
		return nil, nil
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}

	now := time.Now()
	ids := make([]string, 0, len(tasks))

	for _, task := range tasks {
		desc := ComputeReminder(task, settings, now, s.logger)
		if desc == nil {
			continue
		}

		id, err := s.platform.Schedule(ctx, desc.Content, desc.FiringTime)
		if err != nil {
			// One task's failure must not abort the rest.
			s.logger.Warn("schedule failed, task gets no reminder",
				zap.String("task_id", task.ID),
				zap.Error(err),
			)
			continue
		}
		ids = append(ids, id)
	}

	s.logger.Info("resync complete",
		zap.Int("tasks", len(tasks)),
		zap.Int("scheduled", len(ids)),
	)

	return ids, nil
}

// ScheduleOne schedules a reminder for a single created or edited task.
// Identical qualification rules to Resync, but nothing is cancelled first.
func (s *SchedulerService) ScheduleOne(ctx context.Context, task entity.Task, settings entity.ReminderSettings) (string, error) {
	if !s.platform.Available() {
		return "", nil
	}
	if !settings.Enabled {
		return "", nil
	}
	if err := settings.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}

	s.ready(ctx)

	desc := ComputeReminder(task, settings, time.Now(), s.logger)
	if desc == nil {
		return "", nil
	}

	id, err := s.platform.Schedule(ctx, desc.Content, desc.FiringTime)
	if err != nil {
		// Worst case is a reminder that silently does not fire.
		s.logger.Warn("schedule failed, task gets no reminder",
			zap.String("task_id", task.ID),
			zap.Error(err),
		)
		return "", nil
	}

	s.logger.Info("reminder scheduled",
		zap.String("task_id", task.ID),
		zap.String("notification_id", id),
		zap.Time("firing_time", desc.FiringTime),
	)

	return id, nil
}
