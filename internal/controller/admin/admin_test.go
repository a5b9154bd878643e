package admin

import (
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aps-backend/internal/activity"
	"aps-backend/internal/middleware"
	"aps-backend/internal/model"
	"aps-backend/internal/state"
	"aps-backend/internal/testutil"
	"aps-backend/internal/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterGin(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fixture struct {
	engine   *gin.Engine
	token    string
	app      *state.App
	recorder *activity.Recorder
}

func setup(t *testing.T) fixture {
	t.Helper()
	app, _ := testutil.NewApp(t)
	token := testutil.Login(t, app, model.RoleAdmin)
	recorder := activity.NewRecorder(nil)
	ac := NewAdminController(app.Admin, recorder)

	r := gin.New()
	g := r.Group("/admin", middleware.RequireAuth(app.Auth), middleware.CheckRole(model.RoleAdmin))
	g.GET("/employees", ac.GetEmployees)
	g.GET("/employees/:id", ac.GetEmployee)
	g.POST("/employees", ac.CreateEmployee)
	g.PUT("/employees/:id", ac.UpdateEmployee)
	g.DELETE("/employees/:id", ac.DeleteEmployee)
	g.GET("/hr-users", ac.GetHRUsers)
	g.GET("/settings", ac.GetSettings)
	g.PUT("/settings", ac.UpdateSettings)
	g.PUT("/features/:name", ac.ToggleFeature)
	g.GET("/permissions", ac.GetPermissions)
	g.PUT("/permissions/:userId", ac.UpdatePermissions)
	g.GET("/analytics", ac.GetAnalytics)
	g.GET("/activity-logs", ac.GetActivityLogs)
	g.POST("/reports/:id/approve", ac.ApproveReport)
	g.POST("/refresh", ac.Refresh)

	return fixture{engine: r, token: token, app: app, recorder: recorder}
}

func TestHRCannotUseAdminPanel(t *testing.T) {
	app, _ := testutil.NewApp(t)
	token := testutil.Login(t, app, model.RoleHR)
	ac := NewAdminController(app.Admin, nil)
	r := gin.New()
	r.GET("/admin/employees", middleware.RequireAuth(app.Auth), middleware.CheckRole(model.RoleAdmin), ac.GetEmployees)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/admin/employees", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "User doesn't have permission to access", resp["error"])
}

func TestEmployeeLifecycle(t *testing.T) {
	f := setup(t)

	rec, employees := testutil.MakeListRequest(f.token, f.engine, "/admin/employees")
	require.Equal(t, http.StatusOK, rec.Code)
	before := len(employees)

	body := gin.H{"name": "Kiran Desai", "email": "kiran@akshyapatra.com", "role": "hr", "department": "Recruitment"}
	rec, created := testutil.MakeJSONRequest(body, f.token, f.engine, "/admin/employees", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := created["id"].(string)
	assert.True(t, strings.HasPrefix(id, "emp_"))
	assert.Equal(t, "active", created["status"])

	_, employees = testutil.MakeListRequest(f.token, f.engine, "/admin/employees")
	require.Len(t, employees, before+1)
	assert.Equal(t, id, employees[0]["id"])

	rec, _ = testutil.MakeJSONRequest(gin.H{"department": "Operations"}, f.token, f.engine, "/admin/employees/"+id, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, emp := testutil.MakeJSONRequest(nil, f.token, f.engine, "/admin/employees/"+id, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Operations", emp["department"])
	assert.Equal(t, "Kiran Desai", emp["name"])

	rec, _ = testutil.MakeJSONRequest(nil, f.token, f.engine, "/admin/employees/"+id, http.MethodDelete)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = testutil.MakeJSONRequest(nil, f.token, f.engine, "/admin/employees/"+id, http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	entries := f.recorder.Entries("kiran", activity.FilterAll)
	require.Len(t, entries, 1)
	assert.Equal(t, "Created employee", entries[0].Action)
	assert.Equal(t, "System Administrator", entries[0].User)
}

func TestCreateEmployee_Invalid(t *testing.T) {
	f := setup(t)

	tests := []gin.H{
		{"name": "No Email"},
		{"name": "Bad Email", "email": "nope"},
		{"name": "Bad Role", "email": "a@b.com", "role": "candidate"},
	}
	for _, body := range tests {
		rec, resp := testutil.MakeJSONRequest(body, f.token, f.engine, "/admin/employees", http.MethodPost)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body["name"])
		assert.Equal(t, false, resp["success"])
	}
}

func TestSettings(t *testing.T) {
	f := setup(t)

	rec, resp := testutil.MakeJSONRequest(nil, f.token, f.engine, "/admin/settings", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	features := resp["features"].(map[string]interface{})
	assert.Equal(t, true, features["voiceCommands"])

	patch := gin.H{"apiConfig": gin.H{"resumeParser": "disabled", "cloudinary": "enabled", "sendgrid": "enabled", "pusher": "enabled"}}
	rec, resp = testutil.MakeJSONRequest(patch, f.token, f.engine, "/admin/settings", http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "disabled", resp["apiConfig"].(map[string]interface{})["resumeParser"])
	assert.Equal(t, true, resp["features"].(map[string]interface{})["voiceCommands"], "features section untouched")
}

func TestToggleFeature(t *testing.T) {
	f := setup(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"enabled": false}, f.token, f.engine, "/admin/features/voiceCommands", http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "voiceCommands disabled successfully", resp["message"])
	assert.False(t, f.app.Admin.SystemSettings().Features.VoiceCommands)

	rec, _ = testutil.MakeJSONRequest(gin.H{"enabled": true}, f.token, f.engine, "/admin/features/darkMode", http.MethodPut)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{}, f.token, f.engine, "/admin/features/voiceCommands", http.MethodPut)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPermissions(t *testing.T) {
	f := setup(t)

	perms := gin.H{"canUpload": true, "canEdit": false, "canDelete": false, "canManageSectors": false, "canViewReports": true, "canExport": false}
	rec, _ := testutil.MakeJSONRequest(perms, f.token, f.engine, "/admin/permissions/hr_2", http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, f.token, f.engine, "/admin/permissions", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, resp, "hr_1")
	hr2 := resp["hr_2"].(map[string]interface{})
	assert.Equal(t, true, hr2["canViewReports"])
	assert.Equal(t, false, hr2["canEdit"])
}

func TestReadOnlyViews(t *testing.T) {
	f := setup(t)

	rec, users := testutil.MakeListRequest(f.token, f.engine, "/admin/hr-users")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, users, 2)

	rec, analytics := testutil.MakeJSONRequest(nil, f.token, f.engine, "/admin/analytics", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1250), analytics["totalResumes"])

	rec, logs := testutil.MakeListRequest(f.token, f.engine, "/admin/activity-logs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, logs)
}

func TestApproveReportAndRefresh(t *testing.T) {
	f := setup(t)

	rec, resp := testutil.MakeJSONRequest(nil, f.token, f.engine, "/admin/reports/report_1/approve", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Report approved successfully", resp["message"])

	rec, _ = testutil.MakeJSONRequest(nil, f.token, f.engine, "/admin/refresh", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
}
