package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUsername(ctx context.Context, username string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context, excludeID string) ([]Employee, error)
	ListByRole(ctx context.Context, role Role) ([]Employee, error)
	UpdateAllowedIPs(ctx context.Context, id string, allowedIPs string) error
	Delete(ctx context.Context, id string) error
}
