package webhookdeliverer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/config"
	"github.com/taskpilot/remindd/internal/domain/entity"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// firedDTO is the JSON body posted for a fired reminder.
type firedDTO struct {
	ID         string            `json:"id"`
	FiringTime int64             `json:"firing_time"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Priority   string            `json:"priority"`
	Data       map[string]string `json:"data,omitempty"`
}

// Deliverer implements secondary.NotificationDeliverer by POSTing fired
// reminders to a webhook.
type Deliverer struct {
	client *http.Client
	url    string
	logger *zap.Logger
}

// New creates a webhook deliverer from the application configuration.
func New(cfg *config.Config, logger *zap.Logger) secondary.NotificationDeliverer {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logger.Info("webhook deliverer initialized",
		zap.String("url", cfg.WebhookURL),
		zap.Duration("timeout", client.Timeout),
	)

	return &Deliverer{
		client: client,
		url:    cfg.WebhookURL,
		logger: logger.Named("webhook-deliverer"),
	}
}

// Deliver posts one fired reminder as JSON.
func (d *Deliverer) Deliver(ctx context.Context, reminder entity.ScheduledReminder) error {
	if d.url == "" {
		return fmt.Errorf("webhook URL is required for webhook delivery")
	}

	body, err := json.Marshal(firedDTO{
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

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Notification-ID", reminder.ID)
	req.Header.Set("User-Agent", "remindd/1.0")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting reminder to %q: %w", d.url, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d: %s", resp.StatusCode, string(respBody))
	}

	d.logger.Debug("reminder delivered via webhook",
		zap.String("notification_id", reminder.ID),
		zap.Int("status_code", resp.StatusCode),
	)

	return nil
}

// Close releases idle connections.
func (d *Deliverer) Close() error {
	if d.client != nil {
		d.client.CloseIdleConnections()
	}
	return nil
}
