// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"
	"reflect"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/model"
)

// ErrorResponse is the flat failure body of every endpoint
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Fail builds an ErrorResponse
func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// Ok builds a MessageResponse
func Ok(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// ExtractUser extracts the user model from Gin context.
// It does not abort the request; instead returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}

// MergeNonEmpty help merge struct with non-empty field
func MergeNonEmpty(dst, src interface{}) {
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src).Elem()

	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Field(i)
		if !sf.IsZero() {
			df := dv.FieldByName(sv.Type().Field(i).Name)
			if df.IsValid() && df.CanSet() && df.Type() == sf.Type() {
				df.Set(sf)
			}
		}
	}
}
