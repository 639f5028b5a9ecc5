package employee

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "Admin"    // User management, no ledger of their own
	RoleManager  Role = "Manager"  // Reads reports, decides leave requests
	RoleEmployee Role = "Employee" // Owns time/task/leave ledger rows
)

// ValidRoles is the fixed, mutually exclusive role set.
var ValidRoles = []Role{RoleAdmin, RoleManager, RoleEmployee}

type Employee struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Role         Role
	Position     *string
	Department   *string
	AllowedIPs   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the employee has the Admin role
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// IsManager checks if the employee has the Manager role
func (e *Employee) IsManager() bool {
	return e.Role == RoleManager
}

// IPAllowed reports whether ip may log in to this account. Admins are never
// IP-restricted; an empty allow-list means no restriction.
func (e *Employee) IPAllowed(ip string) bool {
	if e.Role == RoleAdmin {
		return true
	}
	if strings.TrimSpace(e.AllowedIPs) == "" {
		return true
	}
	for _, allowed := range strings.Split(e.AllowedIPs, ",") {
		if strings.TrimSpace(allowed) == ip {
			return true
		}
	}
	return false
}

func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
