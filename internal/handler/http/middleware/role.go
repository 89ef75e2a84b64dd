package middleware

import (
	"net/http"

	"github.com/dungnt9/hrm-ApiGateway/internal/domain/user"
	"github.com/dungnt9/hrm-ApiGateway/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManagerOrHR requires a manager, HR staff or admin realm role
func RequireManagerOrHR(next http.Handler) http.Handler {
	return requireAnyRole(next, user.ErrManagerAccessRequired,
		user.RoleManager, user.RoleHRStaff, user.RoleAdmin)
}

// RequireHRStaff requires an HR staff or admin realm role
func RequireHRStaff(next http.Handler) http.Handler {
	return requireAnyRole(next, user.ErrHRAccessRequired,
		user.RoleHRStaff, user.RoleAdmin)
}

// RequireAdmin requires the admin realm role
func RequireAdmin(next http.Handler) http.Handler {
	return requireAnyRole(next, user.ErrAdminAccessRequired, user.RoleAdmin)
}

func requireAnyRole(next http.Handler, denied error, roles ...user.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, denied)
			return
		}

		if !user.HasAnyRole(claims, roles...) {
			response.HandleError(w, denied)
			return
		}

		next.ServeHTTP(w, r)
	})
}
