package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workpulse/ems-backend/internal/domain/employee"
	"github.com/workpulse/ems-backend/internal/handler/http/response"
)

// RequireAdmin requires the Admin role
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(next, employee.ErrAdminPrivilegeRequired, employee.RoleAdmin)
}

// RequireManager requires the Manager role
func RequireManager(next http.Handler) http.Handler {
	return requireRole(next, employee.ErrManagerAccessRequired, employee.RoleManager)
}

// RequireManagerOrAdmin admits either role; reporting is shared between the
// two, leave decisions are not.
func RequireManagerOrAdmin(next http.Handler) http.Handler {
	return requireRole(next, employee.ErrManagerAccessRequired, employee.RoleManager, employee.RoleAdmin)
}

// RequireEmployee requires the Employee role; managers and admins have no
// time ledger of their own.
func RequireEmployee(next http.Handler) http.Handler {
	return requireRole(next, employee.ErrEmployeeRoleRequired, employee.RoleEmployee)
}

func requireRole(next http.Handler, roleErr error, roles ...employee.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, roleErr)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, roleErr)
			return
		}

		for _, role := range roles {
			if employee.Role(roleStr) == role {
				next.ServeHTTP(w, r)
				return
			}
		}
		response.HandleError(w, roleErr)
	})
}
