package user

import "errors"

// Role is a realm role assigned by the identity provider.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHRStaff  Role = "hr_staff"
	RoleAdmin    Role = "system_admin"
)

var (
	ErrManagerAccessRequired = errors.New("manager or HR access required")
	ErrHRAccessRequired      = errors.New("HR access required")
	ErrAdminAccessRequired   = errors.New("admin access required")
)

// RolesFromClaims extracts the realm roles from a decoded token claim map.
// The provider nests them as realm_access.roles.
func RolesFromClaims(claims map[string]interface{}) []Role {
	realmAccess, ok := claims["realm_access"].(map[string]interface{})
	if !ok {
		return nil
	}
	rawRoles, ok := realmAccess["roles"].([]interface{})
	if !ok {
		return nil
	}

	roles := make([]Role, 0, len(rawRoles))
	for _, r := range rawRoles {
		if s, ok := r.(string); ok {
			roles = append(roles, Role(s))
		}
	}
	return roles
}

// HasAnyRole reports whether the claim map carries at least one of the given
// realm roles.
func HasAnyRole(claims map[string]interface{}, wanted ...Role) bool {
	for _, have := range RolesFromClaims(claims) {
		for _, want := range wanted {
			if have == want {
				return true
			}
		}
	}
	return false
}
