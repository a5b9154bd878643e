package datasource

import (
	"context"
	"time"

	"aps-backend/internal/mockdata"
)

// Delays are the simulated network latencies of the mock
type Delays struct {
	Base           time.Duration `yaml:"base"`
	Login          time.Duration `yaml:"login"`
	Apply          time.Duration `yaml:"apply"`
	Upload         time.Duration `yaml:"upload"`
	Parse          time.Duration `yaml:"parse"`
	Report         time.Duration `yaml:"report"`
	CreateEmployee time.Duration `yaml:"create_employee"`
}

// DefaultDelays mirrors the latencies the front-end was designed against
func DefaultDelays() Delays {
	return Delays{
		Base:           500 * time.Millisecond,
		Login:          800 * time.Millisecond,
		Apply:          1000 * time.Millisecond,
		Upload:         2000 * time.Millisecond,
		Parse:          3000 * time.Millisecond,
		Report:         2000 * time.Millisecond,
		CreateEmployee: 1000 * time.Millisecond,
	}
}

// MockAPI is an in-process DataSource that answers with fixtures and
// freshly generated records after a fixed delay. It never mutates shared state.
type MockAPI struct {
	gen    *mockdata.Generator
	delays Delays
	now    func() time.Time
}

var _ DataSource = (*MockAPI)(nil)

// NewMockAPI creates a MockAPI backed by gen
func NewMockAPI(gen *mockdata.Generator, delays Delays) *MockAPI {
	return &MockAPI{
		gen:    gen,
		delays: delays,
		now:    time.Now,
	}
}

// wait blocks for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
