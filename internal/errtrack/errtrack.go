// Package errtrack reports errors to Sentry, or to the log when Sentry is off
package errtrack

import (
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"

	"aps-backend/internal/model"
)

// Tracker receives errors, messages and context about the signed in user
type Tracker interface {
	CaptureError(err error, extra map[string]any)
	CaptureMessage(message string, level sentry.Level)
	SetUser(user model.User)
	AddBreadcrumb(message, category string)
	Flush(timeout time.Duration) bool
}

// Options selects and configures the tracker
type Options struct {
	DSN         string
	Environment string
	Production  bool
	// Enabled turns Sentry on outside production
	Enabled bool
}

// New returns a Sentry tracker in production or when explicitly enabled,
// and a logging stub otherwise.
func New(opts Options) (Tracker, error) {
	if opts.DSN == "" || !(opts.Production || opts.Enabled) {
		return Log{}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Environment,
		TracesSampleRate: 0.1,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if !opts.Production && event.Level == sentry.LevelWarning {
				return nil
			}
			return event
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sentry initialization failed: %w", err)
	}
	log.Printf("Sentry enabled for environment %s", opts.Environment)
	return Sentry{hub: sentry.CurrentHub()}, nil
}

// Sentry forwards to a sentry hub
type Sentry struct {
	hub *sentry.Hub
}

// CaptureError implements Tracker
func (s Sentry) CaptureError(err error, extra map[string]any) {
	s.hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range extra {
			scope.SetExtra(k, v)
		}
		s.hub.CaptureException(err)
	})
	log.Printf("Application Error: %v %v", err, extra)
}

// CaptureMessage implements Tracker
func (s Sentry) CaptureMessage(message string, level sentry.Level) {
	s.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		s.hub.CaptureMessage(message)
	})
}

// SetUser implements Tracker
func (s Sentry) SetUser(user model.User) {
	s.hub.Scope().SetUser(sentry.User{ID: user.ID, Email: user.Email})
	s.hub.Scope().SetTag("role", user.Role)
}

// AddBreadcrumb implements Tracker
func (s Sentry) AddBreadcrumb(message, category string) {
	s.hub.AddBreadcrumb(&sentry.Breadcrumb{Message: message, Category: category, Level: sentry.LevelInfo}, nil)
}

// Flush implements Tracker
func (s Sentry) Flush(timeout time.Duration) bool {
	return s.hub.Flush(timeout)
}

// Log is the development stub, it only writes to the standard logger
type Log struct{}

// CaptureError implements Tracker
func (Log) CaptureError(err error, extra map[string]any) {
	log.Printf("errtrack: %v %v", err, extra)
}

// CaptureMessage implements Tracker
func (Log) CaptureMessage(message string, level sentry.Level) {
	log.Printf("errtrack: [%s] %s", level, message)
}

// SetUser implements Tracker
func (Log) SetUser(user model.User) {
	log.Printf("errtrack: user %s (%s)", user.ID, user.Role)
}

// AddBreadcrumb implements Tracker
func (Log) AddBreadcrumb(message, category string) {
	log.Printf("errtrack: breadcrumb %s: %s", category, message)
}

// Flush implements Tracker
func (Log) Flush(time.Duration) bool { return true }
