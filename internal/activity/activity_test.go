package activity

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPublisher struct {
	mu   sync.Mutex
	got  []Entry
	fail bool
}

func (m *memPublisher) Publish(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("broker down")
	}
	m.got = append(m.got, e)
	return nil
}

func (m *memPublisher) Close() error { return nil }

func TestRecordPublishes(t *testing.T) {
	pub := &memPublisher{}
	r := NewRecorder(pub)

	e := r.Record(context.Background(), Entry{Type: TypeAuth, User: "HR Manager", Action: "signed in", Target: "hr console"})
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())

	require.Len(t, pub.got, 1)
	assert.Equal(t, e, pub.got[0])

	entries := r.Entries("", FilterAll)
	assert.Equal(t, e.ID, entries[0].ID)
	assert.Len(t, entries, 6)
}

func TestRecordSurvivesPublishFailure(t *testing.T) {
	r := NewRecorder(&memPublisher{fail: true})

	r.Record(context.Background(), Entry{Type: TypeEdit, User: "Admin", Action: "changed settings"})
	assert.Len(t, r.Entries("changed", ""), 1)
}

func TestEntriesFilter(t *testing.T) {
	r := NewRecorder(nil)

	assert.Len(t, r.Entries("", ""), 5)
	assert.Len(t, r.Entries("", TypeUpload), 1)
	assert.Len(t, r.Entries("priya", ""), 2)
	assert.Len(t, r.Entries("PRIYA", TypeDownload), 1)
	assert.Len(t, r.Entries("healthcare", FilterAll), 1)
	assert.Empty(t, r.Entries("nobody", ""))
}

func TestEntriesCapped(t *testing.T) {
	r := NewRecorder(nil)
	for i := 0; i < maxEntries+10; i++ {
		r.Record(context.Background(), Entry{Type: TypeView, User: "u"})
	}
	assert.Len(t, r.Entries("", ""), maxEntries)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "activity.upload", RoutingKey(Entry{Type: TypeUpload}))
	assert.Equal(t, "activity.other", RoutingKey(Entry{}))
}
