package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/errtrack"
)

// FallbackResponse is the body served when a handler panics
type FallbackResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Actions []string `json:"actions"`
}

// Recovery turns a panic into a 500 fallback response and reports it to tracker
func Recovery(tracker errtrack.Tracker) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}
		tracker.CaptureError(err, map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(RequestIDKey),
		})

		message := "Oops! Something went wrong"
		if gin.IsDebugging() {
			message = err.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, FallbackResponse{
			Success: false,
			Error:   message,
			Actions: []string{"Try Again", "Go Home"},
		})
	})
}
