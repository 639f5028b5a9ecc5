package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/workpulse/ems-backend/internal/domain/timeclock"
	"github.com/workpulse/ems-backend/internal/handler/http/middleware"
	"github.com/workpulse/ems-backend/internal/handler/http/response"
	tcservice "github.com/workpulse/ems-backend/internal/service/timeclock"
)

type TimeclockHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
}

type TimeclockHandlerImpl struct {
	timeclockService *tcservice.Service
}

func NewTimeclockHandler(timeclockService *tcservice.Service) TimeclockHandler {
	return &TimeclockHandlerImpl{timeclockService: timeclockService}
}

// ClockIn implements TimeclockHandler.
func (h *TimeclockHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "ClockIn", h.timeclockService.ClockIn)
}

// ClockOut implements TimeclockHandler.
func (h *TimeclockHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "ClockOut", h.timeclockService.ClockOut)
}

// StartBreak implements TimeclockHandler.
func (h *TimeclockHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "StartBreak", h.timeclockService.StartBreak)
}

// EndBreak implements TimeclockHandler.
func (h *TimeclockHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "EndBreak", h.timeclockService.EndBreak)
}

func (h *TimeclockHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	fn func(ctx context.Context, employeeID string) (timeclock.TransitionResponse, error),
) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := fn(r.Context(), user.ID)
	if err != nil {
		slog.Error(name+" service error", "error", err, "employee_id", user.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, nil)
}
