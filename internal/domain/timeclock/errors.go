package timeclock

import "errors"

// Illegal transitions are surfaced as explicit errors rather than the silent
// no-op the storage layer would otherwise produce.
var (
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNotClockedIn     = errors.New("not clocked in")
	ErrAlreadyOnBreak   = errors.New("already on a break")
	ErrNotOnBreak       = errors.New("not on a break")
	ErrNoOpenSession    = errors.New("no open work session")
)
