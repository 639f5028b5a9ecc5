package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse/ems-backend/internal/domain/employee"
	"github.com/workpulse/ems-backend/internal/handler/http/middleware"
	"github.com/workpulse/ems-backend/internal/handler/http/response"
	employeeservice "github.com/workpulse/ems-backend/internal/service/employee"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateAllowedIPs(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeeservice.Service
}

func NewEmployeeHandler(employeeService *employeeservice.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler. Admin user management table.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees, err := h.employeeService.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// ListEmployees implements EmployeeHandler. Manager report picker.
func (h *EmployeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err, "username", createReq.Username)
		response.HandleError(w, err)
		return
	}

	slog.Info("User created", "username", created.Username, "role", created.Role)
	response.Created(w, "User created", created)
}

// UpdateAllowedIPs implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateAllowedIPs(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateAllowedIPsRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update allowed IPs decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.employeeService.UpdateAllowedIPs(r.Context(), updateReq); err != nil {
		slog.Error("Update allowed IPs service error", "error", err, "employee_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Allowed IPs updated", nil)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.employeeService.Delete(r.Context(), user.ID, id); err != nil {
		slog.Error("Delete user service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("User deleted", "employee_id", id, "by", user.ID)
	response.SuccessWithMessage(w, "User deleted", nil)
}
