package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse/ems-backend/internal/domain/auth"
	"github.com/workpulse/ems-backend/internal/domain/employee"
	"github.com/workpulse/ems-backend/internal/pkg/jwt"
)

type Service struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login verifies the credentials and the caller's IP against the account's
// allow-list, then issues an access token. An unknown username and a wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.IPAllowed(req.ClientIP) {
		return auth.LoginResponse{}, auth.ErrIPNotAllowed
	}

	token, _, err := s.jwtService.GenerateAccessToken(emp)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token: token,
		User: auth.UserClaims{
			ID:       emp.ID,
			Username: emp.Username,
			Role:     string(emp.Role),
			FullName: emp.FullName,
		},
	}, nil
}
