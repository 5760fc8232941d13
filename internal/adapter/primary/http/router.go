package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/port/primary"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// NewRouter creates an HTTP mux with all application routes registered.
func NewRouter(
	scheduler primary.ReminderScheduler,
	store secondary.SnapshotStore,
	platform secondary.NotificationPlatform,
	healthChecks []secondary.HealthChecker,
	logger *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Host application surface
	mux.Handle("/tasks", NewReplaceTasksHandler(scheduler, store, logger))
	mux.Handle("/settings", NewUpdateSettingsHandler(scheduler, store, logger))
	mux.Handle("/resync", NewResyncHandler(scheduler, store, logger))

	// Diagnostics
	mux.Handle("/reminders", NewListRemindersHandler(platform, logger))
	mux.Handle("/health", NewHealthHandler(healthChecks))

	return mux
}
