package employee

import "github.com/workpulse/ems-backend/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	AllowedIPs string  `json:"allowed_ips"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if len(r.Username) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !IsValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of Employee, Manager, Admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAllowedIPsRequest struct {
	ID         string `json:"-"`
	AllowedIPs string `json:"allowed_ips"`
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	AllowedIPs string  `json:"allowed_ips"`
}

// EmployeeSummaryResponse is the short form used by manager employee pickers.
type EmployeeSummaryResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Username:   e.Username,
		FullName:   e.FullName,
		Role:       string(e.Role),
		Position:   e.Position,
		Department: e.Department,
		AllowedIPs: e.AllowedIPs,
	}
}
