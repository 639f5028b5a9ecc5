package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/ems-backend/internal/domain/auth"
	"github.com/workpulse/ems-backend/internal/domain/employee"
	"github.com/workpulse/ems-backend/internal/domain/leave"
	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/domain/timeclock"
	"github.com/workpulse/ems-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Illegal state transitions
// are conflicts, never silent no-ops.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrIPNotAllowed):
		Forbidden(w, "Access from this IP address is not permitted")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		Conflict(w, "Cannot delete your own account")
	case errors.Is(err, employee.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, employee.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, employee.ErrEmployeeRoleRequired):
		Forbidden(w, "Employee role required")

	// Timeclock transition errors
	case errors.Is(err, timeclock.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, timeclock.ErrNotClockedIn), errors.Is(err, task.ErrNotClockedIn):
		Conflict(w, "Not clocked in")
	case errors.Is(err, timeclock.ErrAlreadyOnBreak):
		Conflict(w, "Already on a break")
	case errors.Is(err, timeclock.ErrNotOnBreak):
		Conflict(w, "Not on a break")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrTaskCompleted):
		Conflict(w, "Task is already completed")
	case errors.Is(err, task.ErrNoActiveSession):
		Conflict(w, "Task has no running session")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Decision must be Approved or Rejected")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
