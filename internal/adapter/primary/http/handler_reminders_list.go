package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/port/secondary"
)

// ListRemindersHandler handles GET /reminders. Diagnostic endpoint: the
// scheduler itself never reconciles against this list.
type ListRemindersHandler struct {
	platform secondary.NotificationPlatform
	logger   *zap.Logger
}

// NewListRemindersHandler creates the handler for listing pending reminders.
func NewListRemindersHandler(platform secondary.NotificationPlatform, logger *zap.Logger) *ListRemindersHandler {
	return &ListRemindersHandler{
		platform: platform,
		logger:   logger.Named("list-reminders-handler"),
	}
}

// ServeHTTP lists pending reminders ordered by firing time.
func (h *ListRemindersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error: "method not allowed",
			Code:  "METHOD_NOT_ALLOWED",
		})
		return
	}

	reminders, err := h.platform.ListScheduled(r.Context())
	if err != nil {
		h.logger.Error("failed to list pending reminders", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	dtos := make([]ReminderDTO, 0, len(reminders))
	for _, reminder := range reminders {
		dtos = append(dtos, toReminderDTO(reminder))
	}

	respondJSON(w, http.StatusOK, dtos)
}
