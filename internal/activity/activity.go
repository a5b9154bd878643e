// Package activity keeps the in-memory activity feed shown on the activity log
// page and fans every new entry out to a Publisher.
package activity

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Activity types
const (
	TypeUpload   = "upload"
	TypeView     = "view"
	TypeEdit     = "edit"
	TypeDownload = "download"
	TypeDelete   = "delete"
	TypeAuth     = "auth"
)

// FilterAll disables the type filter of Entries
const FilterAll = "all"

const maxEntries = 500

// Entry is one line of the activity feed
type Entry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Details   string    `json:"details"`
	IP        string    `json:"ip,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher receives every recorded entry
type Publisher interface {
	Publish(ctx context.Context, e Entry) error
	Close() error
}

// Recorder is an append-only, newest-first activity feed. It is safe for concurrent use.
type Recorder struct {
	publisher Publisher
	now       func() time.Time

	mu      sync.RWMutex
	entries []Entry
}

// NewRecorder creates a Recorder seeded with the demo feed
func NewRecorder(p Publisher) *Recorder {
	if p == nil {
		p = NopPublisher{}
	}
	return &Recorder{
		publisher: p,
		now:       time.Now,
		entries:   seedEntries(),
	}
}

// Record stores e, filling its id and timestamp, and publishes it.
// Publishing failures are logged, never returned.
func (r *Recorder) Record(ctx context.Context, e Entry) Entry {
	e.ID = uuid.NewString()
	if e.Timestamp.IsZero() {
		e.Timestamp = r.now()
	}

	r.mu.Lock()
	r.entries = append([]Entry{e}, r.entries...)
	if len(r.entries) > maxEntries {
		r.entries = r.entries[:maxEntries]
	}
	r.mu.Unlock()

	log.Printf("activity: %s %s %s", e.User, e.Action, e.Target)
	if err := r.publisher.Publish(ctx, e); err != nil {
		log.Printf("activity: publish failed: %v", err)
	}
	return e
}

// Entries returns the feed filtered by type (all or empty for every type) and
// a case-insensitive search term over user, action and target.
func (r *Recorder) Entries(term, kind string) []Entry {
	term = strings.ToLower(strings.TrimSpace(term))

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if kind != "" && kind != FilterAll && e.Type != kind {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(e.User), term) &&
			!strings.Contains(strings.ToLower(e.Target), term) &&
			!strings.Contains(strings.ToLower(e.Action), term) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Close releases the publisher
func (r *Recorder) Close() error {
	return r.publisher.Close()
}

func seedEntries() []Entry {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []Entry{
		{ID: "1", Type: TypeUpload, User: "Priya Sharma", Action: "uploaded a resume", Target: "Rajesh Kumar - Software Engineer", Details: "Resume parsed and assigned to IT sector", Timestamp: at("2024-01-15T10:30:00Z")},
		{ID: "2", Type: TypeView, User: "Admin", Action: "viewed candidate profile", Target: "Amit Patel - Financial Analyst", Details: "Accessed from admin dashboard", Timestamp: at("2024-01-15T10:15:00Z")},
		{ID: "3", Type: TypeEdit, User: "HR Manager", Action: "updated sector configuration", Target: "Healthcare sector", Details: "Added new designation: Physiotherapist", Timestamp: at("2024-01-15T09:45:00Z")},
		{ID: "4", Type: TypeDownload, User: "Priya Sharma", Action: "downloaded resume", Target: "Sarah Johnson - Marketing Manager", Details: "PDF export completed", Timestamp: at("2024-01-15T09:30:00Z")},
		{ID: "5", Type: TypeDelete, User: "Admin", Action: "deleted candidate record", Target: "John Doe - Duplicate Entry", Details: "Removed duplicate candidate entry", Timestamp: at("2024-01-15T09:00:00Z")},
	}
}
