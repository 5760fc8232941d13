package kafkadeliverer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/config"
	"github.com/taskpilot/remindd/internal/domain/entity"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// firedDTO is the wire shape published for a fired reminder.
type firedDTO struct {
	ID         string            `json:"id"`
	FiringTime int64             `json:"firing_time"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Priority   string            `json:"priority"`
	Data       map[string]string `json:"data,omitempty"`
}

// Deliverer implements secondary.NotificationDeliverer by publishing fired
// reminders to a Kafka topic for downstream push delivery. It maintains a
// single writer connection.
type Deliverer struct {
	writer *kafka.Writer
	topic  string
	logger *zap.Logger
}

// New creates a Kafka deliverer from the application configuration.
func New(cfg *config.Config, logger *zap.Logger) secondary.NotificationDeliverer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 100 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}

	logger.Info("kafka deliverer initialized",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.ReminderTopic),
	)

	return &Deliverer{
		writer: writer,
		topic:  cfg.ReminderTopic,
		logger: logger.Named("kafka-deliverer"),
	}
}

// Deliver publishes one fired reminder keyed by its notification id.
func (d *Deliverer) Deliver(ctx context.Context, reminder entity.ScheduledReminder) error {
	value, err := json.Marshal(firedDTO{
		ID:         reminder.ID,
		FiringTime: reminder.FiringTime.Unix(),
		Title:      reminder.Content.Title,
		Body:       reminder.Content.Body,
		Priority:   string(reminder.Content.Priority),
		Data:       reminder.Content.Data,
	})
	if err != nil {
		return fmt.Errorf("marshaling fired reminder: %w", err)
	}

	msg := kafka.Message{
		Topic: d.topic,
		Key:   []byte(reminder.ID),
		Value: value,
	}

	if err := d.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing reminder to kafka topic %q: %w", d.topic, err)
	}

	d.logger.Debug("reminder delivered",
		zap.String("notification_id", reminder.ID),
		zap.String("topic", d.topic),
	)

	return nil
}

// Close shuts down the Kafka writer and releases its resources.
func (d *Deliverer) Close() error {
	if d.writer != nil {
		return d.writer.Close()
	}
	return nil
}
