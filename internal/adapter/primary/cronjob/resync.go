// Package cronjob runs the periodic full resync. Reminders are rebuilt
// from the current snapshot even when the host sends no traffic, which
// sweeps entries whose firing time slipped into the past.
package cronjob

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/port/primary"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// ResyncJob schedules a recurring resync through robfig/cron.
type ResyncJob struct {
	cron      *cron.Cron
	scheduler primary.ReminderScheduler
	tasks     secondary.TaskSource
	settings  secondary.SettingsSource
	logger    *zap.Logger
}

// NewResyncJob creates the job without starting it.
func NewResyncJob(
	scheduler primary.ReminderScheduler,
	tasks secondary.TaskSource,
	settings secondary.SettingsSource,
	logger *zap.Logger,
) *ResyncJob {
	return &ResyncJob{
		cron:      cron.New(),
		scheduler: scheduler,
		tasks:     tasks,
		settings:  settings,
		logger:    logger.Named("resync-job"),
	}
}

// Start registers the cron spec and starts the scheduler.
func (j *ResyncJob) Start(spec string) error {
	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return fmt.Errorf("adding resync cron job: %w", err)
	}
	j.cron.Start()
	j.logger.Info("periodic resync scheduled", zap.String("spec", spec))
	return nil
}

func (j *ResyncJob) run() {
	ids, err := j.scheduler.Resync(context.Background(), j.tasks.Tasks(), j.settings.Settings())
	if err != nil {
		j.logger.Error("periodic resync failed", zap.Error(err))
		return
	}
	j.logger.Info("periodic resync complete", zap.Int("scheduled", len(ids)))
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (j *ResyncJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("periodic resync stopped")
}
