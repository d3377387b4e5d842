package task

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/redmonkez12/taskboard-api/internal/auth"
	"github.com/redmonkez12/taskboard-api/internal/httputil"
	"github.com/redmonkez12/taskboard-api/internal/logging"
)

// Handler contains HTTP handlers for the task endpoints. All routes are
// mounted behind the auth middleware, so an identity is always present in
// the request context.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// DeleteResponse echoes the removed task id.
type DeleteResponse struct {
	ID uuid.UUID `json:"id"`
}

// List handles listing the caller's tasks
// @Summary      List tasks
// @Description  Returns the authenticated user's tasks, most recent first.
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Task
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /tasks [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	tasks, err := h.service.List(r.Context(), ownerID)
	if err != nil {
		logger.Error("failed to list tasks", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list tasks", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, tasks, http.StatusOK)
}

// Create handles task creation
// @Summary      Create a task
// @Description  Creates a task owned by the authenticated user. Priority defaults to MEDIUM, status to TODO.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body Draft true "Task draft"
// @Success      201 {object} Task
// @Failure      400 {object} httputil.ErrorResponse "Missing title"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /tasks [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		logger.Warn("invalid create task request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), ownerID, draft)
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			logger.Warn("task creation failed: missing title")
			httputil.RespondErrorWithCode(w, "please add a title", httputil.CodeTitleRequired, http.StatusBadRequest)
			return
		}
		logger.Error("failed to create task", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to create task", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, created, http.StatusCreated)
}

// Update handles partial task updates
// @Summary      Update a task
// @Description  Merge-patches the task's title, description, priority and status. Only the owner may update.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Param        request body Patch true "Fields to change"
// @Success      200 {object} Task
// @Failure      400 {object} httputil.ErrorResponse "Invalid body"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      403 {object} httputil.ErrorResponse "Not the owner"
// @Failure      404 {object} httputil.ErrorResponse "Task not found"
// @Router       /tasks/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "task not found", httputil.CodeNotFound, http.StatusNotFound)
		return
	}

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logger.Warn("invalid update task request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), ownerID, id, &patch)
	if err != nil {
		h.respondTaskError(w, logger, "update", err)
		return
	}

	httputil.RespondJSON(w, updated, http.StatusOK)
}

// Delete handles task deletion
// @Summary      Delete a task
// @Description  Deletes a task. Only the owner may delete. Responds with the removed id.
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Success      200 {object} DeleteResponse
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      403 {object} httputil.ErrorResponse "Not the owner"
// @Failure      404 {object} httputil.ErrorResponse "Task not found"
// @Router       /tasks/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "task not found", httputil.CodeNotFound, http.StatusNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), ownerID, id); err != nil {
		h.respondTaskError(w, logger, "delete", err)
		return
	}

	httputil.RespondJSON(w, DeleteResponse{ID: id}, http.StatusOK)
}

func (h *Handler) respondTaskError(w http.ResponseWriter, logger *logging.Logger, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		logger.Warn("task "+op+" failed: not found")
		httputil.RespondErrorWithCode(w, "task not found", httputil.CodeNotFound, http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		logger.Warn("task " + op + " failed: not the owner")
		httputil.RespondErrorWithCode(w, "user not authorized", httputil.CodeForbidden, http.StatusForbidden)
	default:
		logger.Error("task "+op+" failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to "+op+" task", httputil.CodeInternalError, http.StatusInternalServerError)
	}
}
