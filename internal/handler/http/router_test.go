package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/ems-backend/internal/config"
	"github.com/workpulse/ems-backend/internal/domain/employee"
	"github.com/workpulse/ems-backend/internal/pkg/jwt"
)

// okStub satisfies every handler interface and records nothing; the router
// tests only exercise routing and the auth/role middleware in front of it.
type okStub struct{}

func (okStub) ok(w http.ResponseWriter) { w.WriteHeader(http.StatusOK) }

func (s okStub) Login(w http.ResponseWriter, _ *http.Request)            { s.ok(w) }
func (s okStub) Get(w http.ResponseWriter, _ *http.Request)              { s.ok(w) }
func (s okStub) Stream(w http.ResponseWriter, _ *http.Request)           { s.ok(w) }
func (s okStub) ClockIn(w http.ResponseWriter, _ *http.Request)          { s.ok(w) }
func (s okStub) ClockOut(w http.ResponseWriter, _ *http.Request)         { s.ok(w) }
func (s okStub) StartBreak(w http.ResponseWriter, _ *http.Request)       { s.ok(w) }
func (s okStub) EndBreak(w http.ResponseWriter, _ *http.Request)         { s.ok(w) }
func (s okStub) Create(w http.ResponseWriter, _ *http.Request)           { s.ok(w) }
func (s okStub) Start(w http.ResponseWriter, _ *http.Request)            { s.ok(w) }
func (s okStub) Stop(w http.ResponseWriter, _ *http.Request)             { s.ok(w) }
func (s okStub) Complete(w http.ResponseWriter, _ *http.Request)         { s.ok(w) }
func (s okStub) ListOwn(w http.ResponseWriter, _ *http.Request)          { s.ok(w) }
func (s okStub) ListPending(w http.ResponseWriter, _ *http.Request)      { s.ok(w) }
func (s okStub) Decide(w http.ResponseWriter, _ *http.Request)           { s.ok(w) }
func (s okStub) ViewReport(w http.ResponseWriter, _ *http.Request)       { s.ok(w) }
func (s okStub) ExportReport(w http.ResponseWriter, _ *http.Request)     { s.ok(w) }
func (s okStub) List(w http.ResponseWriter, _ *http.Request)             { s.ok(w) }
func (s okStub) ListEmployees(w http.ResponseWriter, _ *http.Request)    { s.ok(w) }
func (s okStub) UpdateAllowedIPs(w http.ResponseWriter, _ *http.Request) { s.ok(w) }
func (s okStub) Delete(w http.ResponseWriter, _ *http.Request)           { s.ok(w) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()

	jwtService := jwt.NewJWTService("router-test-secret", "1h")
	stub := okStub{}

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.FrontendURL = "http://localhost:5173"

	router := NewRouter(cfg, jwtService, Handlers{
		Auth:      stub,
		Dashboard: stub,
		Timeclock: stub,
		Task:      stub,
		Leave:     stub,
		Report:    stub,
		Employee:  stub,
	})
	return router, jwtService
}

func tokenFor(t *testing.T, jwtService jwt.Service, role employee.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(employee.Employee{
		ID:       "emp-1",
		Username: "tester",
		FullName: "Test User",
		Role:     role,
	})
	require.NoError(t, err)
	return token
}

func do(router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_LoginIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(router, http.MethodPost, "/api/v1/auth/login", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(router, http.MethodPost, "/api/v1/time/clockin", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RejectsGarbageToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(router, http.MethodPost, "/api/v1/time/clockin", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RoleGates(t *testing.T) {
	router, jwtService := newTestRouter(t)

	employeeToken := tokenFor(t, jwtService, employee.RoleEmployee)
	managerToken := tokenFor(t, jwtService, employee.RoleManager)
	adminToken := tokenFor(t, jwtService, employee.RoleAdmin)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"employee clocks in", http.MethodPost, "/api/v1/time/clockin", employeeToken, http.StatusOK},
		{"employee dashboard", http.MethodGet, "/api/v1/employee/dashboard", employeeToken, http.StatusOK},
		{"employee dashboard stream", http.MethodGet, "/api/v1/employee/dashboard/stream", employeeToken, http.StatusOK},
		{"manager has no dashboard stream", http.MethodGet, "/api/v1/employee/dashboard/stream", managerToken, http.StatusForbidden},
		{"employee own leave", http.MethodGet, "/api/v1/leave", employeeToken, http.StatusOK},
		{"manager cannot clock in", http.MethodPost, "/api/v1/time/clockin", managerToken, http.StatusForbidden},
		{"admin cannot clock in", http.MethodPost, "/api/v1/time/clockin", adminToken, http.StatusForbidden},
		{"manager views report", http.MethodGet, "/api/v1/manager/view-report", managerToken, http.StatusOK},
		{"admin views report", http.MethodGet, "/api/v1/manager/view-report", adminToken, http.StatusOK},
		{"admin exports report", http.MethodGet, "/api/v1/manager/export-report", adminToken, http.StatusOK},
		{"admin lists report employees", http.MethodGet, "/api/v1/manager/employees", adminToken, http.StatusOK},
		{"manager pending leave", http.MethodGet, "/api/v1/leave/pending", managerToken, http.StatusOK},
		{"manager decides leave", http.MethodPut, "/api/v1/leave/lr-1/Approved", managerToken, http.StatusOK},
		{"admin cannot decide leave", http.MethodPut, "/api/v1/leave/lr-1/Approved", adminToken, http.StatusForbidden},
		{"admin cannot list pending leave", http.MethodGet, "/api/v1/leave/pending", adminToken, http.StatusForbidden},
		{"employee cannot view reports", http.MethodGet, "/api/v1/manager/view-report", employeeToken, http.StatusForbidden},
		{"admin lists users", http.MethodGet, "/api/v1/users", adminToken, http.StatusOK},
		{"manager cannot list users", http.MethodGet, "/api/v1/users", managerToken, http.StatusForbidden},
		{"employee cannot delete users", http.MethodDelete, "/api/v1/users/emp-2", employeeToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, tt.method, tt.path, tt.token)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
