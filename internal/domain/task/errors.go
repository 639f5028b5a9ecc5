package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskCompleted   = errors.New("task is already completed")
	ErrNoActiveSession = errors.New("no active task session")
	ErrNotClockedIn    = errors.New("cannot work on a task while clocked out")
)
