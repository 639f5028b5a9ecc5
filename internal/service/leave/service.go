package leave

import (
	"context"

	"github.com/workpulse/ems-backend/internal/domain/leave"
)

type Service struct {
	leaveRepo leave.LeaveRequestRepository
}

func NewService(leaveRepo leave.LeaveRequestRepository) *Service {
	return &Service{leaveRepo: leaveRepo}
}

// Create files a new request for the employee; every request starts Pending.
func (s *Service) Create(ctx context.Context, employeeID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToLeaveRequestResponse(created), nil
}

// ListOwn returns all of the employee's requests, any status.
func (s *Service) ListOwn(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListPending returns every pending request across employees, for the manager
// review queue.
func (s *Service) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// Decide moves a pending request to Approved or Rejected. A request that has
// already been decided stays as it is; decisions are terminal.
func (s *Service) Decide(ctx context.Context, id string, status leave.Status) (leave.LeaveRequestResponse, error) {
	if !leave.IsValidDecision(status) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDecision
	}

	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Decided() {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, status); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request.Status = status
	return leave.ToLeaveRequestResponse(request), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToLeaveRequestResponse(r))
	}
	return responses
}
