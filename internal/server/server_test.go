package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aps-backend/internal/config"
	"aps-backend/internal/datasource"
	"aps-backend/internal/model"
	"aps-backend/internal/state"
	"aps-backend/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setup(t *testing.T) (*gin.Engine, *state.App) {
	t.Helper()
	app, store := testutil.NewApp(t)
	cfg := config.Default()
	cfg.Server.RateLimit = 1000
	s := NewServer(cfg, app, store)
	r, ok := s.RegisterRoutes().(*gin.Engine)
	require.True(t, ok)
	return r, app
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRootRedirectsToCandidate(t *testing.T) {
	r, _ := setup(t)
	rec := get(r, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/candidate", rec.Header().Get("Location"))
}

func TestCandidatePages(t *testing.T) {
	r, _ := setup(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/candidate/apply/job-7", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, LayoutCandidate, resp["layout"])
	assert.Equal(t, "candidate_apply", resp["page"])
	assert.Equal(t, map[string]interface{}{"jobId": "job-7"}, resp["params"])

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/candidate", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "candidate_home", resp["page"])
	assert.NotContains(t, resp, "params")
}

func TestConsolePagesAreGuarded(t *testing.T) {
	r, app := setup(t)

	rec := get(r, "/hr/upload")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/hr/login", rec.Header().Get("Location"))

	rec = get(r, "/admin/login")
	assert.Equal(t, http.StatusOK, rec.Code)

	testutil.Login(t, app, model.RoleAdmin)

	rec = get(r, "/hr")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/unauthorized", rec.Header().Get("Location"))

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/admin/control-panel", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, LayoutAdmin, resp["layout"])
	assert.Equal(t, "admin_control_panel", resp["page"])

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/unauthorized", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "unauthorized", resp["page"])
}

func TestNotFound(t *testing.T) {
	r, _ := setup(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/no/such/page", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", resp["page"])

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/api/v1/no-such-endpoint", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Endpoint not found", resp["error"])
}

func TestHealth(t *testing.T) {
	r, _ := setup(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/health", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up", resp["status"])
	assert.Equal(t, "memory", resp["backend"])
	assert.Equal(t, "false", resp["loading"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestPublicJobBoard(t *testing.T) {
	r, _ := setup(t)

	rec, jobs := testutil.MakeListRequest("", r, "/api/v1/jobs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, jobs)

	rec, faqs := testutil.MakeJSONRequest(nil, "", r, "/api/v1/help?q=resume", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, faqs["faqs"], 4)
}

func TestConsoleAPIRequiresLogin(t *testing.T) {
	r, _ := setup(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/v1/hr/resumes", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not logged in", resp["error"])

	creds := datasource.DemoCredentials[model.RoleHR]
	rec, resp = testutil.MakeJSONRequest(gin.H{"email": creds.Email, "password": creds.Password}, "", r, "/api/v1/auth/login/hr", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)

	rec, resumes := testutil.MakeListRequest(token, r, "/api/v1/hr/resumes")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resumes)

	rec, resp = testutil.MakeJSONRequest(nil, token, r, "/api/v1/admin/employees", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "User doesn't have permission to access", resp["error"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/api/v1/auth/logout", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/api/v1/hr/resumes", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSwaggerIsServed(t *testing.T) {
	r, _ := setup(t)
	rec := get(r, "/swagger/index.html")
	assert.Equal(t, http.StatusOK, rec.Code)
}
