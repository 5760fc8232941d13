package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/domain/entity"
	"github.com/taskpilot/remindd/internal/port/primary"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// ReplaceTasksHandler handles PUT /tasks: the host replaces its task
// snapshot wholesale and the pending reminders are resynchronized.
type ReplaceTasksHandler struct {
	scheduler primary.ReminderScheduler
	store     secondary.SnapshotStore
	logger    *zap.Logger
}

// NewReplaceTasksHandler creates the handler for task snapshot updates.
func NewReplaceTasksHandler(
	scheduler primary.ReminderScheduler,
	store secondary.SnapshotStore,
	logger *zap.Logger,
) *ReplaceTasksHandler {
	return &ReplaceTasksHandler{
		scheduler: scheduler,
		store:     store,
		logger:    logger.Named("replace-tasks-handler"),
	}
}

// ServeHTTP processes the snapshot replacement.
func (h *ReplaceTasksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error: "method not allowed",
			Code:  "METHOD_NOT_ALLOWED",
		})
		return
	}

	var dtos []TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
		return
	}

	tasks := make([]entity.Task, 0, len(dtos))
	for i := range dtos {
		tasks = append(tasks, dtos[i].toEntity())
	}

	h.store.ReplaceTasks(tasks)

	ids, err := h.scheduler.Resync(r.Context(), tasks, h.store.Settings())
	if err != nil {
		h.logger.Error("resync after task replace failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	respondJSON(w, http.StatusOK, ResyncResponse{
		Message:   "task snapshot replaced",
		Tasks:     len(tasks),
		Scheduled: len(ids),
	})
}
