package timeclock

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse/ems-backend/internal/domain/timeclock"
	"github.com/workpulse/ems-backend/internal/pkg/timeutil"
)

// TaskStopper closes the employee's open task session, if any, accumulating
// its minutes into the task and pausing it. Implemented by the task service;
// it joins the ambient transaction through the context.
type TaskStopper interface {
	StopActiveSession(ctx context.Context, employeeID string) error
}

// Service drives the clock-in/out and break transitions of the state machine.
// Every check-then-close-then-open sequence runs inside one transaction, so
// concurrent requests from the same employee cannot interleave between the
// status check and the write.
type Service struct {
	tx          timeclock.Transactor
	resolver    *StatusResolver
	workRepo    timeclock.WorkSessionRepository
	breakRepo   timeclock.BreakSessionRepository
	taskStopper TaskStopper

	now func() time.Time
}

func NewService(
	tx timeclock.Transactor,
	resolver *StatusResolver,
	workRepo timeclock.WorkSessionRepository,
	breakRepo timeclock.BreakSessionRepository,
	taskStopper TaskStopper,
) *Service {
	return &Service{
		tx:          tx,
		resolver:    resolver,
		workRepo:    workRepo,
		breakRepo:   breakRepo,
		taskStopper: taskStopper,
		now:         time.Now,
	}
}

// Status computes the employee's current status token.
func (s *Service) Status(ctx context.Context, employeeID string) (timeclock.EmployeeStatus, error) {
	return s.resolver.Resolve(ctx, employeeID)
}

// ClockIn opens a new work session for today.
func (s *Service) ClockIn(ctx context.Context, employeeID string) (timeclock.TransitionResponse, error) {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		status, err := s.resolver.Resolve(ctx, employeeID)
		if err != nil {
			return err
		}
		if !status.CanClockIn() {
			return timeclock.ErrAlreadyClockedIn
		}

		now := s.now()
		_, err = s.workRepo.Open(ctx, employeeID, now.Format(timeutil.DateLayout), now.Format(timeutil.TimeOfDayLayout))
		if err != nil {
			return fmt.Errorf("clock in: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.TransitionResponse{}, err
	}

	return timeclock.TransitionResponse{Message: "Clocked In"}, nil
}

// ClockOut closes any open task session and break, then the work session.
func (s *Service) ClockOut(ctx context.Context, employeeID string) (timeclock.TransitionResponse, error) {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		status, err := s.resolver.Resolve(ctx, employeeID)
		if err != nil {
			return err
		}
		if !status.ClockedIn() {
			return timeclock.ErrNotClockedIn
		}

		if err := s.taskStopper.StopActiveSession(ctx, employeeID); err != nil {
			return fmt.Errorf("clock out: stop task session: %w", err)
		}

		endTime := s.now().Format(timeutil.TimeOfDayLayout)
		if _, err := s.breakRepo.CloseOpen(ctx, employeeID, endTime); err != nil {
			return fmt.Errorf("clock out: close break: %w", err)
		}
		if _, err := s.workRepo.CloseOpen(ctx, employeeID, endTime); err != nil {
			return fmt.Errorf("clock out: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.TransitionResponse{}, err
	}

	return timeclock.TransitionResponse{Message: "Clocked Out"}, nil
}

// StartBreak closes any open task session, then opens a break on the open
// work session.
func (s *Service) StartBreak(ctx context.Context, employeeID string) (timeclock.TransitionResponse, error) {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		status, err := s.resolver.Resolve(ctx, employeeID)
		if err != nil {
			return err
		}
		if !status.CanStartBreak() {
			if status.State == timeclock.StateOnBreak {
				return timeclock.ErrAlreadyOnBreak
			}
			return timeclock.ErrNotClockedIn
		}

		if err := s.taskStopper.StopActiveSession(ctx, employeeID); err != nil {
			return fmt.Errorf("start break: stop task session: %w", err)
		}

		workSession, err := s.workRepo.GetOpen(ctx, employeeID)
		if err != nil {
			return fmt.Errorf("start break: %w", err)
		}
		if _, err := s.breakRepo.Open(ctx, workSession.ID, s.now().Format(timeutil.TimeOfDayLayout)); err != nil {
			return fmt.Errorf("start break: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.TransitionResponse{}, err
	}

	return timeclock.TransitionResponse{Message: "Break Started"}, nil
}

// EndBreak closes the open break, returning the employee to Working.
func (s *Service) EndBreak(ctx context.Context, employeeID string) (timeclock.TransitionResponse, error) {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		status, err := s.resolver.Resolve(ctx, employeeID)
		if err != nil {
			return err
		}
		if !status.CanEndBreak() {
			return timeclock.ErrNotOnBreak
		}

		if _, err := s.breakRepo.CloseOpen(ctx, employeeID, s.now().Format(timeutil.TimeOfDayLayout)); err != nil {
			return fmt.Errorf("end break: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.TransitionResponse{}, err
	}

	return timeclock.TransitionResponse{Message: "Break Ended"}, nil
}
