package task

import (
	"context"
	"time"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id, employeeID string) (Task, error)
	Create(ctx context.Context, newTask Task) (Task, error)
	ListByDate(ctx context.Context, employeeID, taskDate string) ([]Task, error)
	// ListActiveByDate returns Active tasks joined with their open session
	// start, if any.
	ListActiveByDate(ctx context.Context, employeeID, taskDate string) ([]Task, error)
	UpdateStatus(ctx context.Context, id, employeeID string, status Status) error
	// AccumulateMinutes adds minutes to the task's stored running total.
	AccumulateMinutes(ctx context.Context, id string, minutes float64) error
}

type TaskSessionRepository interface {
	// GetOpenByEmployee returns the single open session across all of the
	// employee's tasks, ErrNoActiveSession if none.
	GetOpenByEmployee(ctx context.Context, employeeID string) (TaskSession, error)
	Open(ctx context.Context, taskID string, startTime time.Time) (TaskSession, error)
	Close(ctx context.Context, id string, endTime time.Time) error
	ListByTask(ctx context.Context, taskID string) ([]TaskSession, error)
}
