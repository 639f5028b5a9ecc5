package report

import (
	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/pkg/validator"
)

// Summary carries the authoritative totals for a date range. Work is in hours;
// break, task and idle are in minutes. Idle is never negative.
type Summary struct {
	Work  float64 `json:"work"`
	Break float64 `json:"break"`
	Task  float64 `json:"task"`
	Idle  float64 `json:"idle"`
}

// EventType identifies a timeline entry. The declared order doubles as the
// tie-break rank for identical timestamps: clock before break before task.
type EventType string

const (
	EventClockIn    EventType = "CLOCK_IN"
	EventClockOut   EventType = "CLOCK_OUT"
	EventBreakStart EventType = "BREAK_START"
	EventBreakEnd   EventType = "BREAK_END"
	EventTaskStart  EventType = "TASK_START"
	EventTaskStop   EventType = "TASK_STOP"
)

// CategoryRank returns the tie-break rank of the event's category for
// identical (date, time) pairs.
func (t EventType) CategoryRank() int {
	switch t {
	case EventClockIn, EventClockOut:
		return 0
	case EventBreakStart, EventBreakEnd:
		return 1
	default:
		return 2
	}
}

type TimelineEvent struct {
	Date string    `json:"date"` // "2006-01-02"
	Type EventType `json:"type"`
	Time string    `json:"time"` // "15:04:05"
	Text string    `json:"text"`
}

type EmployeeInfo struct {
	FullName   string  `json:"full_name"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
}

// Report is the Accounting Engine output for one employee over an inclusive
// date range.
type Report struct {
	Employee EmployeeInfo        `json:"employee"`
	Summary  Summary             `json:"summary"`
	Tasks    []task.TaskResponse `json:"tasks"`
	Timeline []TimelineEvent     `json:"timeline"`
}

type ReportRequest struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
