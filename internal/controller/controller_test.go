package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"aps-backend/internal/state"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{&state.ActionError{Op: "login", Message: "Invalid credentials"}, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", &state.ActionError{Op: "apply"}), http.StatusBadRequest},
		{state.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("notification n1: %w", state.ErrNotFound), http.StatusNotFound},
		{state.ErrNotAuthenticated, http.StatusUnauthorized},
		{fmt.Errorf("get jobs: %w", context.Canceled), http.StatusRequestTimeout},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.code, ErrorStatus(tc.err), tc.err.Error())
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondError(c, errors.New("redis down"), "Failed to save layout")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to save layout: redis down"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	RespondError(c, &state.ActionError{Op: "apply", Message: "Job closed"}, "Failed to apply")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Job closed"}`, rec.Body.String())
}
