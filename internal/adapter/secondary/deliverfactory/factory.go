package deliverfactory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/config"
	"github.com/taskpilot/remindd/internal/domain/entity"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// Factory routes fired reminders to the configured delivery surface:
// webhook when a URL is configured, Kafka otherwise.
type Factory struct {
	kafkaDeliverer   secondary.NotificationDeliverer
	webhookDeliverer secondary.NotificationDeliverer
	webhookURL       string
	logger           *zap.Logger
}

// New creates a deliverer factory holding both delivery adapters.
func New(
	cfg *config.Config,
	kafkaDeliverer secondary.NotificationDeliverer,
	webhookDeliverer secondary.NotificationDeliverer,
	logger *zap.Logger,
) secondary.NotificationDeliverer {
	return &Factory{
		kafkaDeliverer:   kafkaDeliverer,
		webhookDeliverer: webhookDeliverer,
		webhookURL:       cfg.WebhookURL,
		logger:           logger.Named("deliver-factory"),
	}
}

// Deliver routes the reminder to the configured deliverer.
func (f *Factory) Deliver(ctx context.Context, reminder entity.ScheduledReminder) error {
	if f.webhookURL != "" {
		f.logger.Debug("routing to webhook deliverer", zap.String("notification_id", reminder.ID))
		return f.webhookDeliverer.Deliver(ctx, reminder)
	}

	f.logger.Debug("routing to kafka deliverer", zap.String("notification_id", reminder.ID))
	return f.kafkaDeliverer.Deliver(ctx, reminder)
}

// Close closes all underlying deliverers.
func (f *Factory) Close() error {
	var errs []error

	if err := f.kafkaDeliverer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing kafka deliverer: %w", err))
	}

	if err := f.webhookDeliverer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing webhook deliverer: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("closing deliverers: %v", errs)
	}

	return nil
}
