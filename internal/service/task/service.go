package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	tcservice "github.com/workpulse/ems-backend/internal/service/timeclock"

	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/domain/timeclock"
	"github.com/workpulse/ems-backend/internal/pkg/timeutil"
)

// Service drives the task half of the state machine: start, pause, complete.
// Starting a task closes whatever task session is currently open first, so at
// most one productive session is ever open per employee.
type Service struct {
	tx              timeclock.Transactor
	resolver        *tcservice.StatusResolver
	taskRepo        task.TaskRepository
	taskSessionRepo task.TaskSessionRepository

	now func() time.Time
}

func NewService(
	tx timeclock.Transactor,
	resolver *tcservice.StatusResolver,
	taskRepo task.TaskRepository,
	taskSessionRepo task.TaskSessionRepository,
) *Service {
	return &Service{
		tx:              tx,
		resolver:        resolver,
		taskRepo:        taskRepo,
		taskSessionRepo: taskSessionRepo,
		now:             time.Now,
	}
}

// Create adds a Pending task for today.
func (s *Service) Create(ctx context.Context, employeeID string, req task.CreateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	created, err := s.taskRepo.Create(ctx, task.Task{
		EmployeeID:  employeeID,
		TaskDate:    s.now().Format(timeutil.DateLayout),
		Description: req.Description,
		Status:      task.StatusPending,
	})
	if err != nil {
		return task.Task{}, fmt.Errorf("create task: %w", err)
	}

	return created, nil
}

// ListForDate returns the employee's tasks for one date, annotated with the
// open session start of whichever task is currently running.
func (s *Service) ListForDate(ctx context.Context, employeeID, date string) ([]task.Task, error) {
	tasks, err := s.taskRepo.ListByDate(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}

	active, err := s.taskRepo.ListActiveByDate(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	starts := make(map[string]*time.Time, len(active))
	for _, t := range active {
		starts[t.ID] = t.ActiveSessionStart
	}
	for i := range tasks {
		if start, ok := starts[tasks[i].ID]; ok {
			tasks[i].ActiveSessionStart = start
		}
	}

	return tasks, nil
}

// Start makes the task Active and opens a session for it, closing any other
// open task session first.
func (s *Service) Start(ctx context.Context, employeeID, taskID string) (timeclock.TransitionResponse, error) {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		status, err := s.resolver.Resolve(ctx, employeeID)
		if err != nil {
			return err
		}
		if !status.CanStartTask() {
			if status.State == timeclock.StateOnBreak {
				return timeclock.ErrAlreadyOnBreak
			}
			return task.ErrNotClockedIn
		}

		t, err := s.taskRepo.GetByID(ctx, taskID, employeeID)
		if err != nil {
			return err
		}
		if !t.CanStart() {
			return task.ErrTaskCompleted
		}

		if err := s.StopActiveSession(ctx, employeeID); err != nil {
			return fmt.Errorf("start task: %w", err)
		}

		if err := s.taskRepo.UpdateStatus(ctx, taskID, employeeID, task.StatusActive); err != nil {
			return fmt.Errorf("start task: %w", err)
		}
		if _, err := s.taskSessionRepo.Open(ctx, taskID, s.now()); err != nil {
			return fmt.Errorf("start task: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.TransitionResponse{}, err
	}

	return timeclock.TransitionResponse{Message: "Task Started"}, nil
}

// Stop pauses whatever task is running.
func (s *Service) Stop(ctx context.Context, employeeID, taskID string) (timeclock.TransitionResponse, error) {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// Ownership check only; the close targets the single open session.
		if _, err := s.taskRepo.GetByID(ctx, taskID, employeeID); err != nil {
			return err
		}
		return s.StopActiveSession(ctx, employeeID)
	})
	if err != nil {
		return timeclock.TransitionResponse{}, err
	}

	return timeclock.TransitionResponse{Message: "Task Paused"}, nil
}

// Complete closes any open session of the task and marks it Completed.
// Completed is terminal.
func (s *Service) Complete(ctx context.Context, employeeID, taskID string) (timeclock.TransitionResponse, error) {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := s.taskRepo.GetByID(ctx, taskID, employeeID)
		if err != nil {
			return err
		}
		if !t.CanComplete() {
			return task.ErrTaskCompleted
		}

		// Only this task's open session is closed; a session open on a
		// different task is left running.
		session, err := s.taskSessionRepo.GetOpenByEmployee(ctx, employeeID)
		if err == nil && session.TaskID == taskID {
			if err := s.closeSession(ctx, session); err != nil {
				return fmt.Errorf("complete task: %w", err)
			}
		} else if err != nil && !errors.Is(err, task.ErrNoActiveSession) {
			return err
		}
		if err := s.taskRepo.UpdateStatus(ctx, taskID, employeeID, task.StatusCompleted); err != nil {
			return fmt.Errorf("complete task: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.TransitionResponse{}, err
	}

	return timeclock.TransitionResponse{Message: "Task Completed"}, nil
}

// StopActiveSession closes the employee's open task session, if any: the
// session gets its end timestamp, the task accumulates the session's minutes
// and drops to Paused. A missing open session is not an error; there is simply
// nothing to stop. Satisfies the timeclock service's TaskStopper.
func (s *Service) StopActiveSession(ctx context.Context, employeeID string) error {
	session, err := s.taskSessionRepo.GetOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, task.ErrNoActiveSession) {
			return nil
		}
		return err
	}

	if err := s.closeSession(ctx, session); err != nil {
		return fmt.Errorf("stop active session: %w", err)
	}
	if err := s.taskRepo.UpdateStatus(ctx, session.TaskID, employeeID, task.StatusPaused); err != nil {
		return fmt.Errorf("stop active session: %w", err)
	}

	return nil
}

// closeSession stamps the session's end and accumulates its duration into the
// task's stored running total.
func (s *Service) closeSession(ctx context.Context, session task.TaskSession) error {
	endTime := s.now()
	durationMinutes := endTime.Sub(session.StartTime).Minutes()

	if err := s.taskSessionRepo.Close(ctx, session.ID, endTime); err != nil {
		return err
	}
	return s.taskRepo.AccumulateMinutes(ctx, session.TaskID, durationMinutes)
}
