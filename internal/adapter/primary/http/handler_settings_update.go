package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/port/primary"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// UpdateSettingsHandler handles PUT /settings: the host stores new
// reminder settings and the pending reminders are resynchronized. Turning
// reminders off leaves zero pending notifications.
type UpdateSettingsHandler struct {
	scheduler primary.ReminderScheduler
	store     secondary.SnapshotStore
	logger    *zap.Logger
}

// NewUpdateSettingsHandler creates the handler for settings updates.
func NewUpdateSettingsHandler(
	scheduler primary.ReminderScheduler,
	store secondary.SnapshotStore,
	logger *zap.Logger,
) *UpdateSettingsHandler {
	return &UpdateSettingsHandler{
		scheduler: scheduler,
		store:     store,
		logger:    logger.Named("update-settings-handler"),
	}
}

// ServeHTTP processes the settings update.
func (h *UpdateSettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error: "method not allowed",
			Code:  "METHOD_NOT_ALLOWED",
		})
		return
	}

	var dto SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
		return
	}

	settings := dto.toEntity()
	if settings.Enabled {
		if err := settings.Validate(); err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: err.Error(),
				Code:  "VALIDATION_ERROR",
			})
			return
		}
	}

	h.store.UpdateSettings(settings)

	tasks := h.store.Tasks()
	ids, err := h.scheduler.Resync(r.Context(), tasks, settings)
	if err != nil {
		h.logger.Error("resync after settings update failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	respondJSON(w, http.StatusOK, ResyncResponse{
		Message:   "settings updated",
		Tasks:     len(tasks),
		Scheduled: len(ids),
	})
}
