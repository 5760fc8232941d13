package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/port/primary"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// ResyncHandler handles POST /resync: force one reconciliation of the
// pending reminders against the current snapshot.
type ResyncHandler struct {
	scheduler primary.ReminderScheduler
	store     secondary.SnapshotStore
	logger    *zap.Logger
}

// NewResyncHandler creates the handler for forced resyncs.
func NewResyncHandler(
	scheduler primary.ReminderScheduler,
	store secondary.SnapshotStore,
	logger *zap.Logger,
) *ResyncHandler {
	return &ResyncHandler{
		scheduler: scheduler,
		store:     store,
		logger:    logger.Named("resync-handler"),
	}
}

// ServeHTTP processes the forced resync.
func (h *ResyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error: "method not allowed",
			Code:  "METHOD_NOT_ALLOWED",
		})
		return
	}

	tasks := h.store.Tasks()
	ids, err := h.scheduler.Resync(r.Context(), tasks, h.store.Settings())
	if err != nil {
		h.logger.Error("forced resync failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	respondJSON(w, http.StatusOK, ResyncResponse{
		Message:   "resync complete",
		Tasks:     len(tasks),
		Scheduled: len(ids),
	})
}
