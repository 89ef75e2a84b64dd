package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithRoles(t *testing.T, roles ...interface{}) *http.Request {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("role-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"sub":          "emp-1",
		"realm_access": map[string]interface{}{"roles": roles},
	})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func guardStatus(guard func(http.Handler) http.Handler, r *http.Request) int {
	w := httptest.NewRecorder()
	guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(w, r)
	return w.Code
}

func TestRequireManagerOrHR(t *testing.T) {
	assert.Equal(t, http.StatusOK, guardStatus(RequireManagerOrHR, requestWithRoles(t, "manager")))
	assert.Equal(t, http.StatusOK, guardStatus(RequireManagerOrHR, requestWithRoles(t, "hr_staff")))
	assert.Equal(t, http.StatusOK, guardStatus(RequireManagerOrHR, requestWithRoles(t, "system_admin")))
	assert.Equal(t, http.StatusForbidden, guardStatus(RequireManagerOrHR, requestWithRoles(t, "employee")))
}

func TestRequireHRStaff(t *testing.T) {
	assert.Equal(t, http.StatusOK, guardStatus(RequireHRStaff, requestWithRoles(t, "hr_staff")))
	assert.Equal(t, http.StatusOK, guardStatus(RequireHRStaff, requestWithRoles(t, "system_admin")))
	assert.Equal(t, http.StatusForbidden, guardStatus(RequireHRStaff, requestWithRoles(t, "manager")))
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, guardStatus(RequireAdmin, requestWithRoles(t, "system_admin")))
	assert.Equal(t, http.StatusForbidden, guardStatus(RequireAdmin, requestWithRoles(t, "hr_staff")))
	assert.Equal(t, http.StatusForbidden, guardStatus(RequireAdmin, requestWithRoles(t, "manager", "employee")))
}

func TestGuardRejectsMissingClaims(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusForbidden, guardStatus(RequireManagerOrHR, r))
}
