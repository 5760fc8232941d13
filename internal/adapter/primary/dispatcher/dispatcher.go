package dispatcher

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/port/secondary"
)

// Dispatcher polls the pending set for due reminders at regular intervals
// and hands them to the deliverer. Reminders fire once: a delivery failure
// is logged and the reminder dropped, its id stale either way. The
// dispatcher respects context cancellation for graceful shutdown.
type Dispatcher struct {
	queue        secondary.NotificationQueue
	deliverer    secondary.NotificationDeliverer
	pollInterval time.Duration
	batchSize    int
	logger       *zap.Logger
}

// New creates a Dispatcher that drains due reminders at the given interval.
func New(
	queue secondary.NotificationQueue,
	deliverer secondary.NotificationDeliverer,
	pollInterval time.Duration,
	batchSize int,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		queue:        queue,
		deliverer:    deliverer,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		logger:       logger.Named("dispatcher"),
	}
}

// Run starts the polling loop. It blocks until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("dispatcher started",
		zap.Duration("poll_interval", d.pollInterval),
		zap.Int("batch_size", d.batchSize),
	)

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := d.dispatchDue(ctx); err != nil {
				// Log but do not return -- the dispatcher should keep running.
				d.logger.Error("error dispatching due reminders", zap.Error(err))
			}
		}
	}
}

func (d *Dispatcher) dispatchDue(ctx context.Context) error {
	reminders, err := d.queue.FetchDue(ctx, d.batchSize)
	if err != nil {
		return err
	}

	for _, reminder := range reminders {
		if err := d.deliverer.Deliver(ctx, reminder); err != nil {
			d.logger.Warn("reminder dropped, delivery failed",
				zap.String("notification_id", reminder.ID),
				zap.Error(err),
			)
			continue
		}

		d.logger.Info("reminder fired",
			zap.String("notification_id", reminder.ID),
			zap.Time("firing_time", reminder.FiringTime),
		)
	}

	return nil
}
