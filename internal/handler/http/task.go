package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/handler/http/middleware"
	"github.com/workpulse/ems-backend/internal/handler/http/response"
	taskservice "github.com/workpulse/ems-backend/internal/service/task"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Stop(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService *taskservice.Service
}

func NewTaskHandler(taskService *taskservice.Service) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// Create implements TaskHandler.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.taskService.Create(r.Context(), user.ID, createReq)
	if err != nil {
		slog.Error("Create task service error", "error", err, "employee_id", user.ID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created", task.ToTaskResponse(created))
}

// Start implements TaskHandler.
func (h *TaskHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.Start(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Start task service error", "error", err, "employee_id", user.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, nil)
}

// Stop implements TaskHandler.
func (h *TaskHandlerImpl) Stop(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.Stop(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Stop task service error", "error", err, "employee_id", user.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, nil)
}

// Complete implements TaskHandler.
func (h *TaskHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.Complete(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Complete task service error", "error", err, "employee_id", user.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, nil)
}
