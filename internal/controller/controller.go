// Package controller holds what the console handlers share: the mapping from
// store errors to HTTP statuses.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/state"
	"aps-backend/internal/utilities"
)

// ErrorStatus maps a store error to a status code. A data source answer with
// success=false is the caller's fault (400).
func ErrorStatus(err error) int {
	switch {
	case state.IsActionError(err):
		return http.StatusBadRequest
	case errors.Is(err, state.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, state.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	}
	return http.StatusInternalServerError
}

// RespondError writes the ErrorResponse for err. Unexpected errors are
// logged and prefixed with what.
func RespondError(c *gin.Context, err error, what string) {
	status := ErrorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", what, err)
		message = fmt.Sprintf("%s: %s", what, err.Error())
	}
	c.JSON(status, utilities.Fail(message))
}
