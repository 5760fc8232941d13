package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/taskpilot/remindd/internal/domain"
)

// Config holds all application configuration values.
type Config struct {
	// HTTP server
	HTTPAddr string

	// Redis (notification platform backing store)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Delivery
	KafkaBrokers  []string
	ReminderTopic string
	WebhookURL    string // when set, fired reminders go here instead of Kafka

	// Dispatcher
	PollInterval time.Duration
	BatchSize    int

	// Periodic resync (standard 5-field cron spec)
	ResyncCron string

	// Application
	Environment string
	LogLevel    string
}

// New creates a Config populated from environment variables with sensible
// defaults.
func New() *Config {
	return &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		RedisAddr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		KafkaBrokers:  strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		ReminderTopic: getEnv("REMINDER_TOPIC", "task-reminders"),
		WebhookURL:    getEnv("WEBHOOK_URL", ""),
		PollInterval:  domain.DefaultPollInterval,
		BatchSize:     domain.DefaultBatchSize,
		ResyncCron:    getEnv("RESYNC_CRON", "0 0 * * *"),
		Environment:   getEnv("ENVIRONMENT", "local"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
