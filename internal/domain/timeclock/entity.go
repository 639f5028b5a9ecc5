package timeclock

import "time"

// WorkSession is one clocked-in stretch of a working day. The calendar date and
// the local times-of-day are stored separately; EndTime is nil while the
// session is open. At most one open session exists per employee.
type WorkSession struct {
	ID         string
	EmployeeID string
	WorkDate   string // "2006-01-02"
	StartTime  string // "15:04:05", wall-clock local
	EndTime    *string
	CreatedAt  time.Time
}

// BreakSession belongs to exactly one WorkSession. At most one open break
// exists per open work session.
type BreakSession struct {
	ID            string
	WorkSessionID string
	StartTime     string // "15:04:05", wall-clock local
	EndTime       *string
	CreatedAt     time.Time
}
