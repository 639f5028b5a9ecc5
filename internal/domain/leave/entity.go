package leave

import "time"

type Status string

// Status is terminal once decided; only a Manager decides.
const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  string // "2006-01-02"
	EndDate    string // "2006-01-02"
	Reason     string
	Status     Status
	CreatedAt  time.Time

	// Join field for manager listings.
	EmployeeName *string
}

// Decided reports whether the request has reached a terminal status.
func (l *LeaveRequest) Decided() bool {
	return l.Status != StatusPending
}

func IsValidDecision(status Status) bool {
	return status == StatusApproved || status == StatusRejected
}
