package errtrack

import (
	"errors"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aps-backend/internal/model"
)

func TestNewSelectsStub(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no dsn", Options{Production: true}},
		{"development", Options{DSN: "https://key@o0.ingest.sentry.io/1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := New(tc.opts)
			require.NoError(t, err)
			assert.IsType(t, Log{}, tr)
		})
	}
}

func TestNewSentry(t *testing.T) {
	tr, err := New(Options{DSN: "https://key@o0.ingest.sentry.io/1", Environment: "test", Enabled: true})
	require.NoError(t, err)
	require.IsType(t, Sentry{}, tr)

	// none of these may panic without network access
	tr.SetUser(model.User{ID: "hr_1", Role: model.RoleHR})
	tr.AddBreadcrumb("login", "auth")
	tr.CaptureMessage("hello", sentry.LevelInfo)
	tr.CaptureError(errors.New("boom"), map[string]any{"path": "/hr"})
	tr.Flush(10 * time.Millisecond)
}

func TestNewInvalidDSN(t *testing.T) {
	_, err := New(Options{DSN: "not a dsn", Production: true})
	assert.Error(t, err)
}

func TestLogStub(t *testing.T) {
	var tr Tracker = Log{}
	tr.CaptureError(errors.New("boom"), nil)
	tr.CaptureMessage("msg", sentry.LevelWarning)
	assert.True(t, tr.Flush(time.Millisecond))
}
