package timeclock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/domain/timeclock"
)

// StatusResolver derives the single current activity state for an employee
// from the ledger's open rows. It is a pure read with no side effects, used
// both to render the dashboard and to gate transitions.
type StatusResolver struct {
	workRepo        timeclock.WorkSessionRepository
	breakRepo       timeclock.BreakSessionRepository
	taskRepo        task.TaskRepository
	taskSessionRepo task.TaskSessionRepository
}

func NewStatusResolver(
	workRepo timeclock.WorkSessionRepository,
	breakRepo timeclock.BreakSessionRepository,
	taskRepo task.TaskRepository,
	taskSessionRepo task.TaskSessionRepository,
) *StatusResolver {
	return &StatusResolver{
		workRepo:        workRepo,
		breakRepo:       breakRepo,
		taskRepo:        taskRepo,
		taskSessionRepo: taskSessionRepo,
	}
}

// Resolve computes the employee's status token. Break takes precedence over
// task, though by the ledger invariant both can never be open at once.
func (r *StatusResolver) Resolve(ctx context.Context, employeeID string) (timeclock.EmployeeStatus, error) {
	workSession, err := r.workRepo.GetOpen(ctx, employeeID)
	if err != nil {
		if errors.Is(err, timeclock.ErrNoOpenSession) {
			return timeclock.EmployeeStatus{
				State: timeclock.StateClockedOut,
				Text:  "Not currently working.",
			}, nil
		}
		return timeclock.EmployeeStatus{}, fmt.Errorf("resolve status: %w", err)
	}

	status := timeclock.EmployeeStatus{
		State:         timeclock.StateWorking,
		Text:          "Currently on the clock (Idle).",
		WorkStartTime: &workSession.StartTime,
	}

	breakSession, err := r.breakRepo.GetOpen(ctx, workSession.ID)
	if err == nil {
		status.State = timeclock.StateOnBreak
		status.Text = "Currently on a break."
		status.BreakStartTime = &breakSession.StartTime
		return status, nil
	}
	if !errors.Is(err, timeclock.ErrNotOnBreak) {
		return timeclock.EmployeeStatus{}, fmt.Errorf("resolve status: %w", err)
	}

	taskSession, err := r.taskSessionRepo.GetOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, task.ErrNoActiveSession) {
			return status, nil
		}
		return timeclock.EmployeeStatus{}, fmt.Errorf("resolve status: %w", err)
	}

	activeTask, err := r.taskRepo.GetByID(ctx, taskSession.TaskID, employeeID)
	if err != nil {
		return timeclock.EmployeeStatus{}, fmt.Errorf("resolve status: %w", err)
	}

	taskStart := taskSession.StartTime.Format(time.RFC3339)
	status.State = timeclock.StateOnTask
	status.Text = "Working on: " + activeTask.Description
	status.TaskStartTime = &taskStart
	status.ActiveTaskID = &activeTask.ID
	return status, nil
}
