package task

import "time"

type Status string

// Status is monotonic towards Completed: Pending→Active once, Active↔Paused
// freely, Completed terminal.
const (
	StatusPending   Status = "Pending"
	StatusActive    Status = "Active"
	StatusPaused    Status = "Paused"
	StatusCompleted Status = "Completed"
)

type Task struct {
	ID          string
	EmployeeID  string
	TaskDate    string // "2006-01-02"
	Description string
	Status      Status
	// TotalMinutes is the running sum across all closed sessions of this task.
	// It is updated each time a session closes, never recomputed from scratch.
	TotalMinutes float64
	CreatedAt    time.Time

	// Join field: start of the open session, if one exists.
	ActiveSessionStart *time.Time
}

// TaskSession is one timed stretch of work on a task. Unlike work and break
// rows these carry full timestamps. At most one open session exists across all
// of an employee's tasks.
type TaskSession struct {
	ID        string
	TaskID    string
	StartTime time.Time
	EndTime   *time.Time
}

// CanStart reports whether the task may (re)enter Active.
func (t *Task) CanStart() bool {
	return t.Status == StatusPending || t.Status == StatusActive || t.Status == StatusPaused
}

// CanComplete reports whether the task may be marked Completed.
func (t *Task) CanComplete() bool {
	return t.Status != StatusCompleted
}
