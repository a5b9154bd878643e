// Package validation registers the custom binding tags used by request payloads
package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"aps-backend/internal/model"
	"aps-backend/internal/utilities"
)

// ValidateResumeStatus accepts the known resume statuses
func ValidateResumeStatus(fl validator.FieldLevel) bool {
	return model.ResumeStatus(fl.Field().String()).Valid()
}

// ValidateRole accepts the console roles
func ValidateRole(fl validator.FieldLevel) bool {
	return utilities.Contains(model.Roles, fl.Field().String())
}

// ValidateWidgetType accepts the dashboard widget types
func ValidateWidgetType(fl validator.FieldLevel) bool {
	return utilities.Contains(model.WidgetTypes, fl.Field().String())
}

// Register adds the custom tags to v
func Register(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"resume_status": ValidateResumeStatus,
		"role":          ValidateRole,
		"widget_type":   ValidateWidgetType,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// RegisterGin adds the custom tags to gin's default binding validator
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return Register(v)
}
