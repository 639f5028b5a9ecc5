package task

import (
	"time"

	"github.com/workpulse/ems-backend/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Description string `json:"description"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if len(r.Description) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID           string  `json:"id"`
	TaskDate     string  `json:"task_date"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	TotalMinutes float64 `json:"total_minutes"`

	ActiveSessionStart *string `json:"active_session_start,omitempty"`
}

func ToTaskResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:           t.ID,
		TaskDate:     t.TaskDate,
		Description:  t.Description,
		Status:       string(t.Status),
		TotalMinutes: t.TotalMinutes,
	}
	if t.ActiveSessionStart != nil {
		start := t.ActiveSessionStart.Format(time.RFC3339)
		resp.ActiveSessionStart = &start
	}
	return resp
}
