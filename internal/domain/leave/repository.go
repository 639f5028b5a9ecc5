package leave

import "context"

type LeaveRequestRepository interface {
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Create(ctx context.Context, newRequest LeaveRequest) (LeaveRequest, error)
	// ListByEmployee returns the employee's own requests, newest start first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// ListPending returns all pending requests with employee names, ordered by
	// start date.
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
