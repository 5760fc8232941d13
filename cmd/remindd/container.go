package main

import (
	"context"
	"net/http"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/adapter/primary/cronjob"
	"github.com/taskpilot/remindd/internal/adapter/primary/dispatcher"
	httphandler "github.com/taskpilot/remindd/internal/adapter/primary/http"
	"github.com/taskpilot/remindd/internal/adapter/secondary/deliverfactory"
	"github.com/taskpilot/remindd/internal/adapter/secondary/kafkadeliverer"
	"github.com/taskpilot/remindd/internal/adapter/secondary/memstore"
	"github.com/taskpilot/remindd/internal/adapter/secondary/redisplatform"
	"github.com/taskpilot/remindd/internal/adapter/secondary/webhookdeliverer"
	"github.com/taskpilot/remindd/internal/config"
	"github.com/taskpilot/remindd/internal/domain/service"
	"github.com/taskpilot/remindd/internal/port/primary"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

func buildContainer(ctx context.Context) (*dig.Container, error) {
	c := dig.New()

	// --- Configuration ---
	if err := c.Provide(config.New); err != nil {
		return nil, err
	}

	// --- Logger ---
	if err := c.Provide(newLogger); err != nil {
		return nil, err
	}

	// --- Secondary adapters (infrastructure) ---

	// Redis client
	if err := c.Provide(func(cfg *config.Config, logger *zap.Logger) (*goredis.Client, error) {
		return redisplatform.NewClient(ctx, cfg, logger)
	}); err != nil {
		return nil, err
	}

	// Notification platform (implements secondary.NotificationPlatform)
	if err := c.Provide(func(client *goredis.Client, logger *zap.Logger) secondary.NotificationPlatform {
		return redisplatform.NewPlatform(client, logger)
	}); err != nil {
		return nil, err
	}

	// Dispatcher-side queue (implements secondary.NotificationQueue)
	if err := c.Provide(func(client *goredis.Client, logger *zap.Logger) secondary.NotificationQueue {
		return redisplatform.NewQueue(client, logger)
	}); err != nil {
		return nil, err
	}

	// Redis health check
	if err := c.Provide(func(client *goredis.Client) secondary.HealthChecker {
		return redisplatform.NewHealthCheck(client)
	}); err != nil {
		return nil, err
	}

	// Collect all health checks
	if err := c.Provide(func(redisCheck secondary.HealthChecker) []secondary.HealthChecker {
		return []secondary.HealthChecker{redisCheck}
	}); err != nil {
		return nil, err
	}

	// Deliverers
	if err := c.Provide(func(cfg *config.Config, logger *zap.Logger) secondary.NotificationDeliverer {
		kafkaDel := kafkadeliverer.New(cfg, logger)
		webhookDel := webhookdeliverer.New(cfg, logger)
		return deliverfactory.New(cfg, kafkaDel, webhookDel, logger)
	}); err != nil {
		return nil, err
	}

	// Host snapshot store
	if err := c.Provide(memstore.New); err != nil {
		return nil, err
	}
	if err := c.Provide(func(store *memstore.Store) secondary.SnapshotStore {
		return store
	}); err != nil {
		return nil, err
	}

	// --- Domain service ---
	if err := c.Provide(func(platform secondary.NotificationPlatform, logger *zap.Logger) primary.ReminderScheduler {
		return service.NewSchedulerService(platform, logger)
	}); err != nil {
		return nil, err
	}

	// --- Primary adapters ---

	// Dispatcher worker
	if err := c.Provide(func(
		queue secondary.NotificationQueue,
		deliverer secondary.NotificationDeliverer,
		cfg *config.Config,
		logger *zap.Logger,
	) *dispatcher.Dispatcher {
		return dispatcher.New(queue, deliverer, cfg.PollInterval, cfg.BatchSize, logger)
	}); err != nil {
		return nil, err
	}

	// Periodic resync job
	if err := c.Provide(func(
		scheduler primary.ReminderScheduler,
		store secondary.SnapshotStore,
		logger *zap.Logger,
	) *cronjob.ResyncJob {
		return cronjob.NewResyncJob(scheduler, store, store, logger)
	}); err != nil {
		return nil, err
	}

	// HTTP router
	if err := c.Provide(func(
		scheduler primary.ReminderScheduler,
		store secondary.SnapshotStore,
		platform secondary.NotificationPlatform,
		healthChecks []secondary.HealthChecker,
		logger *zap.Logger,
	) http.Handler {
		return httphandler.NewRouter(scheduler, store, platform, healthChecks, logger)
	}); err != nil {
		return nil, err
	}

	return c, nil
}
