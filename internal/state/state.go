// Package state holds the application state containers. Each store caches
// what the data source returned, persists its session keys and exposes copies
// through accessors. Data source calls run outside the store lock.
package state

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"aps-backend/internal/datasource"
	"aps-backend/internal/storage"
)

var (
	// ErrNotAuthenticated is returned by operations that need a signed in user
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotFound is returned when an addressed record does not exist
	ErrNotFound = errors.New("not found")
)

// ActionError is a data source answer with success=false
type ActionError struct {
	Op      string
	Message string
}

func (e *ActionError) Error() string {
	return e.Message
}

// IsActionError reports whether err carries an ActionError
func IsActionError(err error) bool {
	var ae *ActionError
	return errors.As(err, &ae)
}

// loadingFlag is the single busy indicator of a store. Overlapping
// operations share it, so the first one to finish clears it.
type loadingFlag struct {
	mu sync.Mutex
	on bool
}

func (f *loadingFlag) start() func() {
	f.set(true)
	return func() { f.set(false) }
}

func (f *loadingFlag) set(v bool) {
	f.mu.Lock()
	f.on = v
	f.mu.Unlock()
}

func (f *loadingFlag) get() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

// App owns one instance of every store
type App struct {
	Auth      *AuthStore
	Candidate *CandidateStore
	HR        *HRStore
	Admin     *AdminStore
}

// NewApp wires the stores to api and s. Auth is restored from s immediately;
// call Load to fetch the rest.
func NewApp(ctx context.Context, api datasource.DataSource, s storage.Storage) *App {
	return &App{
		Auth:      NewAuthStore(ctx, api, s),
		Candidate: NewCandidateStore(api, s),
		HR:        NewHRStore(api, s),
		Admin:     NewAdminStore(api),
	}
}

// Load runs the initial load of the candidate, HR and admin stores in parallel
func (a *App) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Candidate.Load(ctx) })
	g.Go(func() error { return a.HR.Load(ctx) })
	g.Go(func() error { return a.Admin.Load(ctx) })
	if err := g.Wait(); err != nil {
		log.Printf("Initial load failed: %v", err)
		return err
	}
	return nil
}

func cloneSlice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
