package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	gqlhandler "github.com/dungnt9/hrm-ApiGateway/internal/handler/graphql"
	"github.com/dungnt9/hrm-ApiGateway/internal/pkg/jwt"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerTestSecret = "router-test-secret"

// stubHandler answers 200 on every route so status codes in these tests come
// from the middleware chain alone.
func stubHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type stubAuthHandler struct{}

func (stubAuthHandler) Login(w http.ResponseWriter, r *http.Request)        { stubHandler(w, r) }
func (stubAuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) { stubHandler(w, r) }
func (stubAuthHandler) Logout(w http.ResponseWriter, r *http.Request)       { stubHandler(w, r) }
func (stubAuthHandler) Me(w http.ResponseWriter, r *http.Request)           { stubHandler(w, r) }

type stubEmployeeHandler struct{}

func (stubEmployeeHandler) List(w http.ResponseWriter, r *http.Request)           { stubHandler(w, r) }
func (stubEmployeeHandler) Get(w http.ResponseWriter, r *http.Request)            { stubHandler(w, r) }
func (stubEmployeeHandler) Create(w http.ResponseWriter, r *http.Request)         { stubHandler(w, r) }
func (stubEmployeeHandler) Update(w http.ResponseWriter, r *http.Request)         { stubHandler(w, r) }
func (stubEmployeeHandler) Delete(w http.ResponseWriter, r *http.Request)         { stubHandler(w, r) }
func (stubEmployeeHandler) GetMe(w http.ResponseWriter, r *http.Request)          { stubHandler(w, r) }
func (stubEmployeeHandler) GetManager(w http.ResponseWriter, r *http.Request)     { stubHandler(w, r) }
func (stubEmployeeHandler) GetTeamMembers(w http.ResponseWriter, r *http.Request) { stubHandler(w, r) }
func (stubEmployeeHandler) GetMyTeam(w http.ResponseWriter, r *http.Request)      { stubHandler(w, r) }
func (stubEmployeeHandler) AssignRole(w http.ResponseWriter, r *http.Request)     { stubHandler(w, r) }
func (stubEmployeeHandler) GetDepartments(w http.ResponseWriter, r *http.Request) { stubHandler(w, r) }
func (stubEmployeeHandler) GetTeams(w http.ResponseWriter, r *http.Request)       { stubHandler(w, r) }

type stubAttendanceHandler struct{}

func (stubAttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request)   { stubHandler(w, r) }
func (stubAttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request)  { stubHandler(w, r) }
func (stubAttendanceHandler) GetStatus(w http.ResponseWriter, r *http.Request) { stubHandler(w, r) }
func (stubAttendanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	stubHandler(w, r)
}
func (stubAttendanceHandler) GetTeamAttendance(w http.ResponseWriter, r *http.Request) {
	stubHandler(w, r)
}
func (stubAttendanceHandler) GetShifts(w http.ResponseWriter, r *http.Request)  { stubHandler(w, r) }
func (stubAttendanceHandler) GetMyShift(w http.ResponseWriter, r *http.Request) { stubHandler(w, r) }

type stubLeaveHandler struct{}

func (stubLeaveHandler) Create(w http.ResponseWriter, r *http.Request)      { stubHandler(w, r) }
func (stubLeaveHandler) List(w http.ResponseWriter, r *http.Request)        { stubHandler(w, r) }
func (stubLeaveHandler) ListPending(w http.ResponseWriter, r *http.Request) { stubHandler(w, r) }
func (stubLeaveHandler) Get(w http.ResponseWriter, r *http.Request)         { stubHandler(w, r) }
func (stubLeaveHandler) Approve(w http.ResponseWriter, r *http.Request)     { stubHandler(w, r) }
func (stubLeaveHandler) Reject(w http.ResponseWriter, r *http.Request)      { stubHandler(w, r) }
func (stubLeaveHandler) GetBalance(w http.ResponseWriter, r *http.Request)  { stubHandler(w, r) }

type stubOvertimeHandler struct{}

func (stubOvertimeHandler) Create(w http.ResponseWriter, r *http.Request)      { stubHandler(w, r) }
func (stubOvertimeHandler) List(w http.ResponseWriter, r *http.Request)        { stubHandler(w, r) }
func (stubOvertimeHandler) ListPending(w http.ResponseWriter, r *http.Request) { stubHandler(w, r) }
func (stubOvertimeHandler) Get(w http.ResponseWriter, r *http.Request)         { stubHandler(w, r) }
func (stubOvertimeHandler) Approve(w http.ResponseWriter, r *http.Request)     { stubHandler(w, r) }
func (stubOvertimeHandler) Reject(w http.ResponseWriter, r *http.Request)      { stubHandler(w, r) }

type stubNotificationHandler struct{}

func (stubNotificationHandler) List(w http.ResponseWriter, r *http.Request)       { stubHandler(w, r) }
func (stubNotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) { stubHandler(w, r) }
func (stubNotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	stubHandler(w, r)
}
func (stubNotificationHandler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	stubHandler(w, r)
}
func (stubNotificationHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	stubHandler(w, r)
}
func (stubNotificationHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	stubHandler(w, r)
}
func (stubNotificationHandler) Push(w http.ResponseWriter, r *http.Request)      { stubHandler(w, r) }
func (stubNotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) { stubHandler(w, r) }
func (stubNotificationHandler) Stream(w http.ResponseWriter, r *http.Request)    { stubHandler(w, r) }

type stubOrgChartHandler struct{}

func (stubOrgChartHandler) Get(w http.ResponseWriter, r *http.Request) { stubHandler(w, r) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Verifier) {
	t.Helper()

	verifier := jwt.NewDevVerifier(routerTestSecret)
	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"ping": &graphql.Field{Type: graphql.String},
			},
		}),
	})
	require.NoError(t, err)

	router := NewRouter(RouterDeps{
		Verifier:            verifier,
		AuthHandler:         stubAuthHandler{},
		EmployeeHandler:     stubEmployeeHandler{},
		AttendanceHandler:   stubAttendanceHandler{},
		LeaveHandler:        stubLeaveHandler{},
		OvertimeHandler:     stubOvertimeHandler{},
		NotificationHandler: stubNotificationHandler{},
		OrgChartHandler:     stubOrgChartHandler{},
		GraphQLHandler:      gqlhandler.NewHandler(schema),
		FrontendURL:         "http://localhost:3000",
		Env:                 "test",
	})
	return router, verifier
}

func tokenWithRoles(t *testing.T, verifier jwt.Verifier, roles ...string) string {
	t.Helper()

	rawRoles := make([]interface{}, 0, len(roles))
	for _, role := range roles {
		rawRoles = append(rawRoles, role)
	}
	_, tokenString, err := verifier.JWTAuth().Encode(map[string]interface{}{
		"sub":          "emp-42",
		"realm_access": map[string]interface{}{"roles": rawRoles},
	})
	require.NoError(t, err)
	return tokenString
}

func doRequest(t *testing.T, router http.Handler, method, target, token string) int {
	t.Helper()

	r := httptest.NewRequest(method, target, nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w.Code
}

func TestRouterRoleGuards(t *testing.T) {
	router, verifier := newTestRouter(t)

	employee := tokenWithRoles(t, verifier, "employee")
	manager := tokenWithRoles(t, verifier, "employee", "manager")
	hrStaff := tokenWithRoles(t, verifier, "employee", "hr_staff")
	admin := tokenWithRoles(t, verifier, "employee", "system_admin")

	tests := []struct {
		name   string
		method string
		target string
		token  string
		expect int
	}{
		// Employee deletion and role assignment are admin only
		{"delete employee as hr_staff", http.MethodDelete, "/api/employees/e1", hrStaff, http.StatusForbidden},
		{"delete employee as admin", http.MethodDelete, "/api/employees/e1", admin, http.StatusOK},
		{"assign role as hr_staff", http.MethodPost, "/api/employees/e1/role", hrStaff, http.StatusForbidden},
		{"assign role as admin", http.MethodPost, "/api/employees/e1/role", admin, http.StatusOK},

		// Employee create/update need hr_staff
		{"create employee as manager", http.MethodPost, "/api/employees/", manager, http.StatusForbidden},
		{"create employee as hr_staff", http.MethodPost, "/api/employees/", hrStaff, http.StatusOK},

		// Team views need manager or HR
		{"team members as employee", http.MethodGet, "/api/teams/t1/members", employee, http.StatusForbidden},
		{"team members as manager", http.MethodGet, "/api/teams/t1/members", manager, http.StatusOK},
		{"my team as employee", http.MethodGet, "/api/employees/my-team", employee, http.StatusForbidden},
		{"my team as manager", http.MethodGet, "/api/employees/my-team", manager, http.StatusOK},
		{"team attendance as employee", http.MethodGet, "/api/attendance/team/t1", employee, http.StatusForbidden},
		{"team attendance as hr_staff", http.MethodGet, "/api/attendance/team/t1", hrStaff, http.StatusOK},

		// Leave approval flow needs manager or HR
		{"pending leave as employee", http.MethodGet, "/api/leave/pending", employee, http.StatusForbidden},
		{"pending leave as manager", http.MethodGet, "/api/leave/pending", manager, http.StatusOK},
		{"approve leave as employee", http.MethodPost, "/api/leave/requests/l1/approve", employee, http.StatusForbidden},

		// Notification templates and push delivery are admin surface
		{"templates as employee", http.MethodGet, "/api/notifications/templates", employee, http.StatusForbidden},
		{"templates as admin", http.MethodGet, "/api/notifications/templates", admin, http.StatusOK},
		{"push as hr_staff", http.MethodPost, "/api/notifications/push", hrStaff, http.StatusForbidden},
		{"broadcast as admin", http.MethodPost, "/api/notifications/broadcast", admin, http.StatusOK},

		// Plain authenticated routes stay open to every role
		{"list employees as employee", http.MethodGet, "/api/employees/", employee, http.StatusOK},
		{"own status as employee", http.MethodGet, "/api/attendance/status", employee, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, doRequest(t, router, tt.method, tt.target, tt.token))
		})
	}
}

func TestRouterRejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doRequest(t, router, http.MethodGet, "/api/employees/", ""))
}

func TestRouterPublicRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	// Auth endpoints and the health check take no token
	assert.Equal(t, http.StatusOK, doRequest(t, router, http.MethodPost, "/api/auth/login", ""))
	assert.Equal(t, http.StatusOK, doRequest(t, router, http.MethodGet, "/health", ""))
}
