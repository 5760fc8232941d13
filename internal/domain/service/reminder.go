package service

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/domain"
	"github.com/taskpilot/remindd/internal/domain/entity"
)

// ComputeReminder maps a task to a reminder descriptor, or nil when the
// task should not produce one: reminders disabled, task completed, an
// unparseable schedule, or a firing time not strictly in the future.
// The task's start instant is evaluated in now's location, so the caller
// controls the timezone.
func ComputeReminder(task entity.Task, settings entity.ReminderSettings, now time.Time, logger *zap.Logger) *entity.ReminderDescriptor {
	if !settings.Enabled {
		return nil
	}
	if task.IsCompleted() {
		return nil
	}

	start, err := task.StartTime(now.Location())
	if err != nil {
		// One bad task must not block reminders for the rest of the set.
		logger.Warn("skipping task with malformed schedule",
			zap.String("task_id", task.ID),
			zap.Error(err),
		)
		return nil
	}

	firing := start.Add(-settings.LeadTime())
	if !firing.After(now) {
		return nil
	}

	// Recomputed from the two instants rather than trusted from settings.
	// A mismatch means the caller handed us inconsistent values; log it and
	// carry on with the recomputed number.
	minutesUntil := int(start.Sub(firing).Minutes())
	if minutesUntil != settings.ReminderMinutes {
		logger.Warn("minutes-until disagrees with settings",
			zap.String("task_id", task.ID),
			zap.Int("computed", minutesUntil),
			zap.Int("reminder_minutes", settings.ReminderMinutes),
		)
	}

	startClock := start.Format("3:04 PM")

	content := entity.NotificationContent{
		Title:    priorityMarker(task.Priority) + domain.ReminderTitle,
		Body:     fmt.Sprintf("%s starts at %s (in %d min)", task.Title, startClock, minutesUntil),
		Priority: task.Priority,
		Data: map[string]string{
			"task_id":    task.ID,
			"task_title": task.Title,
			"priority":   string(task.Priority),
			"start_time": startClock,
			"lead_min":   strconv.Itoa(minutesUntil),
		},
	}
	if settings.SoundEnabled {
		content.Sound = domain.DefaultSound
	}
	if settings.VibrationEnabled {
		content.Vibration = domain.StandardVibration
	}

	return &entity.ReminderDescriptor{
		TaskID:     task.ID,
		FiringTime: firing,
		Content:    content,
	}
}

// priorityMarker returns the glyph prefixed to the reminder title for each
// priority tier.
func priorityMarker(p entity.Priority) string {
	switch p {
	case entity.PriorityHigh:
		return "🔴 "
	case entity.PriorityMedium:
		return "🟡 "
	case entity.PriorityLow:
		return "🟢 "
	default:
		return ""
	}
}
