package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/ems-backend/internal/domain/auth"
	"github.com/workpulse/ems-backend/internal/domain/employee"
	"github.com/workpulse/ems-backend/internal/domain/leave"
	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/domain/timeclock"
	"github.com/workpulse/ems-backend/internal/pkg/validator"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"ip not allowed", auth.ErrIPNotAllowed, http.StatusForbidden},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"username exists", employee.ErrUsernameExists, http.StatusConflict},
		{"delete self", employee.ErrCannotDeleteSelf, http.StatusConflict},
		{"admin required", employee.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"already clocked in", timeclock.ErrAlreadyClockedIn, http.StatusConflict},
		{"not clocked in", timeclock.ErrNotClockedIn, http.StatusConflict},
		{"task not clocked in", task.ErrNotClockedIn, http.StatusConflict},
		{"already on break", timeclock.ErrAlreadyOnBreak, http.StatusConflict},
		{"not on break", timeclock.ErrNotOnBreak, http.StatusConflict},
		{"task not found", task.ErrTaskNotFound, http.StatusNotFound},
		{"task completed", task.ErrTaskCompleted, http.StatusConflict},
		{"leave not found", leave.ErrLeaveRequestNotFound, http.StatusNotFound},
		{"leave processed", leave.ErrLeaveRequestAlreadyProcessed, http.StatusConflict},
		{"invalid decision", leave.ErrInvalidDecision, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandleError_WrappedError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.Join(errors.New("clock in"), timeclock.ErrAlreadyClockedIn))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "start_date", Message: "start_date must be a valid date (YYYY-MM-DD)"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "start_date")
}
