package employee

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse/ems-backend/internal/domain/employee"
)

// Service covers the admin user-management surface plus the manager employee
// picker.
type Service struct {
	employeeRepo employee.EmployeeRepository
}

func NewService(employeeRepo employee.EmployeeRepository) *Service {
	return &Service{employeeRepo: employeeRepo}
}

// List returns every account except the caller's own, so an admin cannot
// reach their own row in the management table.
func (s *Service) List(ctx context.Context, callerID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, callerID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToEmployeeResponse(e))
	}
	return responses, nil
}

// ListEmployees returns Employee-role accounts in the short picker form used
// by manager report screens.
func (s *Service) ListEmployees(ctx context.Context) ([]employee.EmployeeSummaryResponse, error) {
	employees, err := s.employeeRepo.ListByRole(ctx, employee.RoleEmployee)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeSummaryResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.EmployeeSummaryResponse{ID: e.ID, FullName: e.FullName})
	}
	return responses, nil
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         employee.Role(req.Role),
		Position:     req.Position,
		Department:   req.Department,
		AllowedIPs:   req.AllowedIPs,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToEmployeeResponse(created), nil
}

// UpdateAllowedIPs replaces the account's login allow-list. An empty string
// lifts the restriction.
func (s *Service) UpdateAllowedIPs(ctx context.Context, req employee.UpdateAllowedIPsRequest) error {
	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.employeeRepo.UpdateAllowedIPs(ctx, req.ID, req.AllowedIPs)
}

// Delete removes an account. The caller cannot delete themselves.
func (s *Service) Delete(ctx context.Context, callerID, id string) error {
	if callerID == id {
		return employee.ErrCannotDeleteSelf
	}
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}
