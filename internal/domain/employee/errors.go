package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrUsernameExists         = errors.New("username already exists")
	ErrInvalidRole            = errors.New("invalid role")
	ErrCannotDeleteSelf       = errors.New("you cannot delete your own account")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrManagerAccessRequired  = errors.New("manager access required")
	ErrEmployeeRoleRequired   = errors.New("employee role required")
)
