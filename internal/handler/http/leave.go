package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse/ems-backend/internal/domain/leave"
	"github.com/workpulse/ems-backend/internal/handler/http/middleware"
	"github.com/workpulse/ems-backend/internal/handler/http/response"
	leaveservice "github.com/workpulse/ems-backend/internal/service/leave"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leaveservice.Service
}

func NewLeaveHandler(leaveService *leaveservice.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.leaveService.Create(r.Context(), user.ID, createReq)
	if err != nil {
		slog.Error("Create leave request service error", "error", err, "employee_id", user.ID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// ListOwn implements LeaveHandler.
func (h *LeaveHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListOwn(r.Context(), user.ID)
	if err != nil {
		slog.Error("List leave requests service error", "error", err, "employee_id", user.ID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements LeaveHandler.
func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		slog.Error("List pending leave requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	status := leave.Status(chi.URLParam(r, "status"))

	decided, err := h.leaveService.Decide(r.Context(), id, status)
	if err != nil {
		slog.Error("Decide leave request service error", "error", err, "leave_request_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+decided.Status, decided)
}
