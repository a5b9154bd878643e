package middleware

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aps-backend/internal/datasource"
	"aps-backend/internal/errtrack"
	"aps-backend/internal/mockdata"
	"aps-backend/internal/model"
	"aps-backend/internal/state"
	"aps-backend/internal/storage"
	"aps-backend/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newAuth(t *testing.T, role string) *state.AuthStore {
	t.Helper()
	ctx := context.Background()
	auth := state.NewAuthStore(ctx, datasource.NewMockAPI(mockdata.New(1), datasource.Delays{}), storage.NewMemory())
	if role != "" {
		_, err := auth.Login(ctx, datasource.DemoCredentials[role], role)
		require.NoError(t, err)
	}
	return auth
}

func checkUserHandler(c *gin.Context) {
	u, exist := c.Get("user")
	if !exist {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": u})
}

func protectedEngine(auth *state.AuthStore, roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(auth), CheckRole(roles...), checkUserHandler)
	return r
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		r := protectedEngine(newAuth(t, ""), model.RoleHR)
		rec, resp := testutil.MakeJSONRequest(nil, "", r, "/protected", http.MethodGet)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Not logged in", resp["error"])
		assert.Equal(t, false, resp["success"])
	})

	t.Run("signed in with session token", func(t *testing.T) {
		auth := newAuth(t, model.RoleHR)
		r := protectedEngine(auth, model.RoleHR)
		rec, resp := testutil.MakeJSONRequest(nil, auth.Token(), r, "/protected", http.MethodGet)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, resp["ok"])
	})

	t.Run("signed in without header", func(t *testing.T) {
		r := protectedEngine(newAuth(t, model.RoleHR), model.RoleHR)
		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stale token", func(t *testing.T) {
		r := protectedEngine(newAuth(t, model.RoleHR), model.RoleHR)
		rec, resp := testutil.MakeJSONRequest(nil, "mock_token_hr_1", r, "/protected", http.MethodGet)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid session token", resp["error"])
	})

	t.Run("after logout", func(t *testing.T) {
		auth := newAuth(t, model.RoleHR)
		token := auth.Token()
		require.NoError(t, auth.Logout(context.Background()))
		rec, _ := testutil.MakeJSONRequest(nil, token, protectedEngine(auth, model.RoleHR), "/protected", http.MethodGet)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCheckRole(t *testing.T) {
	auth := newAuth(t, model.RoleHR)

	rec, resp := testutil.MakeJSONRequest(nil, auth.Token(), protectedEngine(auth, model.RoleAdmin), "/protected", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "User doesn't have permission to access", resp["error"])

	rec, _ = testutil.MakeJSONRequest(nil, auth.Token(), protectedEngine(auth, model.RoleAdmin, model.RoleHR), "/protected", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	// without RequireAuth in front there is no user
	r := gin.New()
	r.GET("/protected", CheckRole(model.RoleHR), checkUserHandler)
	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/protected", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRolePage(t *testing.T) {
	page := func(auth *state.AuthStore) *gin.Engine {
		r := gin.New()
		r.GET("/admin", RequireRolePage(auth, model.RoleAdmin), checkUserHandler)
		return r
	}

	tests := []struct {
		name     string
		role     string
		code     int
		location string
	}{
		{"anonymous goes to login", "", http.StatusFound, "/admin/login"},
		{"wrong role goes to unauthorized", model.RoleHR, http.StatusFound, "/unauthorized"},
		{"right role passes", model.RoleAdmin, http.StatusOK, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
			page(newAuth(t, tc.role)).ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.location, rec.Header().Get("Location"))
		})
	}
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiterMiddleware(2))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	codes := []int{}
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func readFileHandler(c *gin.Context) {
	_, err := c.FormFile("file")
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Entity too large"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func multipartBody(t *testing.T, size int) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestSizeLimit(t *testing.T) {
	r := gin.New()
	r.POST("/upload", SizeLimit(1024), readFileHandler)

	body, contentType := multipartBody(t, 512)
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	body, contentType = multipartBody(t, 64*1024)
	rec = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSafeHeader(t *testing.T) {
	r := gin.New()
	r.Use(SafeHeader())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

type recordingTracker struct {
	errtrack.Log
	errs []error
}

func (r *recordingTracker) CaptureError(err error, _ map[string]any) {
	r.errs = append(r.errs, err)
}

func TestRecovery(t *testing.T) {
	tracker := &recordingTracker{}
	r := gin.New()
	r.Use(RequestID(), Recovery(tracker))
	r.GET("/boom", func(c *gin.Context) { panic("render failed") })

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/boom", http.MethodGet)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, []interface{}{"Try Again", "Go Home"}, resp["actions"])
	require.Len(t, tracker.errs, 1)
	assert.EqualError(t, tracker.errs[0], "render failed")
	assert.NotEmpty(t, rec.Header().Get(RequestIDKey))
}

func TestRequestIDReused(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "abc")
	r.ServeHTTP(rec, req)

	assert.Equal(t, "abc", rec.Body.String())
	assert.Equal(t, "abc", rec.Header().Get(RequestIDKey))
}
