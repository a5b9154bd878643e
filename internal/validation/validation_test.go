package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Status string `validate:"omitempty,resume_status"`
	Role   string `validate:"omitempty,role"`
	Widget string `validate:"omitempty,widget_type"`
}

func TestCustomTags(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	tests := []struct {
		name  string
		in    payload
		valid bool
	}{
		{"empty", payload{}, true},
		{"known values", payload{Status: "under_review", Role: "admin", Widget: "quick_actions"}, true},
		{"unknown status", payload{Status: "archived"}, false},
		{"unknown role", payload{Role: "candidate"}, false},
		{"unknown widget", payload{Widget: "weather"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.in)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegisterGin(t *testing.T) {
	assert.NoError(t, RegisterGin())
}
