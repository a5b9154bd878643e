package testutil

import (
	"context"
	"testing"

	"aps-backend/internal/datasource"
	"aps-backend/internal/mockdata"
	"aps-backend/internal/state"
	"aps-backend/internal/storage"
)

// Seed is the mock data seed used by handler tests
const Seed = 42

// NewApp builds a loaded App over in-memory storage and a mock API without delays
func NewApp(t *testing.T) (*state.App, storage.Storage) {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemory()
	app := state.NewApp(ctx, datasource.NewMockAPI(mockdata.New(Seed), datasource.Delays{}), store)
	if err := app.Load(ctx); err != nil {
		t.Fatalf("load app: %v", err)
	}
	return app, store
}

// Login signs app in as role with the demo credentials and returns the session token
func Login(t *testing.T, app *state.App, role string) string {
	t.Helper()
	session, err := app.Auth.Login(context.Background(), datasource.DemoCredentials[role], role)
	if err != nil {
		t.Fatalf("login as %s: %v", role, err)
	}
	return session.Token
}
