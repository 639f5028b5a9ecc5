package timeclock

import "context"

type WorkSessionRepository interface {
	// GetOpen returns the employee's open work session, ErrNoOpenSession if none.
	GetOpen(ctx context.Context, employeeID string) (WorkSession, error)
	Open(ctx context.Context, employeeID, workDate, startTime string) (WorkSession, error)
	// CloseOpen closes the employee's open session and returns the number of
	// rows closed (zero when none was open).
	CloseOpen(ctx context.Context, employeeID, endTime string) (int64, error)
	ListByDate(ctx context.Context, employeeID, workDate string) ([]WorkSession, error)
}

type BreakSessionRepository interface {
	// GetOpen returns the open break of the given work session, ErrNotOnBreak if none.
	GetOpen(ctx context.Context, workSessionID string) (BreakSession, error)
	Open(ctx context.Context, workSessionID, startTime string) (BreakSession, error)
	// CloseOpen closes any open break across the employee's work sessions.
	CloseOpen(ctx context.Context, employeeID, endTime string) (int64, error)
	ListByWorkSession(ctx context.Context, workSessionID string) ([]BreakSession, error)
}

// Transactor serializes the check-then-close-then-open sequences of a single
// employee's requests. Repositories joined through the returned context run
// inside the same database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
