package auth

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// AttemptLog appends authentication attempt records to <dir>/auth.log.
// Fields: timestamp (RFC3339) | level | role | status | identifier? | message?
// level: debug|info|warning|error|fatal
// status: Success|Fail
type AttemptLog struct {
	Enabled bool
	Dir     string

	mu sync.Mutex
}

// NewAttemptLog creates an AttemptLog writing under dir, "log" when empty
func NewAttemptLog(enabled bool, dir string) *AttemptLog {
	if dir == "" {
		dir = "log"
	}
	return &AttemptLog{Enabled: enabled, Dir: dir}
}

// Path is the log file location
func (l *AttemptLog) Path() string {
	return filepath.Join(l.Dir, "auth.log")
}

// Log writes one attempt. Failures to write are ignored.
func (l *AttemptLog) Log(level, role, status, identifier, message string) {
	if l == nil || !l.Enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.Dir, 0o750); err != nil {
		return
	}
	f, err := os.OpenFile(l.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	ts := time.Now().UTC().Format(time.RFC3339)
	parts := []string{ts, level, role, status}
	if identifier != "" {
		parts = append(parts, identifier)
	}
	if message != "" {
		parts = append(parts, message)
	}

	_, _ = f.WriteString(strings.Join(parts, " | ") + "\n")
}
