// Package remind is the embeddable entry point for the task reminder
// scheduler. Host applications hand it their task snapshot and reminder
// settings; it keeps the pending notification set in sync and (optionally)
// runs the dispatcher that fires due reminders.
package remind

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/adapter/primary/dispatcher"
	"github.com/taskpilot/remindd/internal/adapter/secondary/deliverfactory"
	"github.com/taskpilot/remindd/internal/adapter/secondary/kafkadeliverer"
	"github.com/taskpilot/remindd/internal/adapter/secondary/noopplatform"
	"github.com/taskpilot/remindd/internal/adapter/secondary/redisplatform"
	"github.com/taskpilot/remindd/internal/adapter/secondary/webhookdeliverer"
	"github.com/taskpilot/remindd/internal/config"
	"github.com/taskpilot/remindd/internal/domain"
	"github.com/taskpilot/remindd/internal/domain/entity"
	"github.com/taskpilot/remindd/internal/domain/service"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// Service is the main entry point for the reminder scheduler. It can be
// embedded in other Go applications.
type Service struct {
	scheduler   *service.SchedulerService
	platform    secondary.NotificationPlatform
	dispatcher  *dispatcher.Dispatcher // nil on the no-op platform
	deliverer   secondary.NotificationDeliverer
	redisClient *goredis.Client
	logger      *zap.Logger
	config      *Config
}

// Config holds configuration for the reminder service.
type Config struct {
	// Redis (notification platform backing store)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Delivery of fired reminders
	KafkaBrokers  []string
	ReminderTopic string
	WebhookURL    string // when set, fired reminders go here instead of Kafka

	// Dispatcher
	PollInterval time.Duration
	BatchSize    int

	// Noop selects the no-op notification platform for runtimes without a
	// notification capability. Every operation then degrades to a no-op.
	Noop bool

	// Logger (if nil, a default logger will be created)
	Logger *zap.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		RedisAddr:     "localhost:6379",
		KafkaBrokers:  []string{"localhost:9092"},
		ReminderTopic: "task-reminders",
		PollInterval:  domain.DefaultPollInterval,
		BatchSize:     domain.DefaultBatchSize,
	}
}

// New creates a new reminder Service with the given configuration. The
// platform implementation is selected here, once, so nothing downstream
// branches on the runtime.
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
	}

	if cfg.Noop {
		platform := noopplatform.New()
		return &Service{
			scheduler: service.NewSchedulerService(platform, logger),
			platform:  platform,
			logger:    logger,
			config:    cfg,
		}, nil
	}

	internalCfg := &config.Config{
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		KafkaBrokers:  cfg.KafkaBrokers,
		ReminderTopic: cfg.ReminderTopic,
		WebhookURL:    cfg.WebhookURL,
		PollInterval:  cfg.PollInterval,
		BatchSize:     cfg.BatchSize,
	}
	if internalCfg.PollInterval <= 0 {
		internalCfg.PollInterval = domain.DefaultPollInterval
	}
	if internalCfg.BatchSize <= 0 {
		internalCfg.BatchSize = domain.DefaultBatchSize
	}

	redisClient, err := redisplatform.NewClient(context.Background(), internalCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating redis client: %w", err)
	}

	platform := redisplatform.NewPlatform(redisClient, logger)
	queue := redisplatform.NewQueue(redisClient, logger)

	kafkaDel := kafkadeliverer.New(internalCfg, logger)
	webhookDel := webhookdeliverer.New(internalCfg, logger)
	deliverer := deliverfactory.New(internalCfg, kafkaDel, webhookDel, logger)

	return &Service{
		scheduler:   service.NewSchedulerService(platform, logger),
		platform:    platform,
		dispatcher:  dispatcher.New(queue, deliverer, internalCfg.PollInterval, internalCfg.BatchSize, logger),
		deliverer:   deliverer,
		redisClient: redisClient,
		logger:      logger,
		config:      cfg,
	}, nil
}

// Start begins the dispatcher in the background. It returns immediately;
// on the no-op platform there is nothing to run.
func (s *Service) Start(ctx context.Context) error {
	if s.dispatcher == nil {
		s.logger.Info("no-op platform, dispatcher not started")
		return nil
	}
	s.logger.Info("starting reminder dispatcher")
	go s.dispatcher.Run(ctx)
	return nil
}

// EnsureReady checks notification permission, requesting it once if
// undetermined, and registers the reminder channel. Call it before
// enabling reminders; Resync and ScheduleOne also run it lazily.
func (s *Service) EnsureReady(ctx context.Context) PermissionStatus {
	return PermissionStatus(s.scheduler.EnsureReady(ctx))
}

// Resync cancels every pending reminder and reschedules from the given
// task list. The returned notification ids are diagnostic only.
func (s *Service) Resync(ctx context.Context, tasks []Task, settings Settings) ([]string, error) {
	domainTasks := make([]entity.Task, 0, len(tasks))
	for i := range tasks {
		domainTasks = append(domainTasks, tasks[i].toDomain())
	}
	return s.scheduler.Resync(ctx, domainTasks, settings.toDomain())
}

// ScheduleOne schedules a reminder for a single created or edited task
// without cancelling anything. Prefer Resync whenever a stale reminder
// might already exist for the task.
func (s *Service) ScheduleOne(ctx context.Context, task Task, settings Settings) (string, error) {
	return s.scheduler.ScheduleOne(ctx, task.toDomain(), settings.toDomain())
}

// ListScheduled returns all pending reminders ordered by firing time.
// Diagnostic use only.
func (s *Service) ListScheduled(ctx context.Context) ([]Reminder, error) {
	scheduled, err := s.platform.ListScheduled(ctx)
	if err != nil {
		return nil, err
	}

	reminders := make([]Reminder, 0, len(scheduled))
	for _, r := range scheduled {
		reminders = append(reminders, Reminder{
			ID:         r.ID,
			FiringTime: r.FiringTime,
			Title:      r.Content.Title,
			Body:       r.Content.Body,
			Priority:   string(r.Content.Priority),
			Data:       r.Content.Data,
		})
	}
	return reminders, nil
}

// Close gracefully shuts down the service and releases resources.
func (s *Service) Close() error {
	s.logger.Info("shutting down reminder service")

	var errs []error

	if s.deliverer != nil {
		if err := s.deliverer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing deliverer: %w", err))
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing redis client: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}

	return nil
}
