package state

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"aps-backend/internal/datasource"
	"aps-backend/internal/model"
	"aps-backend/internal/storage"
)

// Session is the user and token of one successful login
type Session struct {
	User  model.User
	Token string
}

// AuthStore holds the signed in console user
type AuthStore struct {
	api     datasource.AuthAPI
	storage storage.Storage
	loading loadingFlag

	mu            sync.RWMutex
	user          *model.User
	token         string
	authenticated bool
}

// NewAuthStore restores a previous session from s. A stored user that cannot
// be decoded clears both auth keys.
func NewAuthStore(ctx context.Context, api datasource.AuthAPI, s storage.Storage) *AuthStore {
	a := &AuthStore{api: api, storage: s}
	a.restore(ctx)
	return a
}

func (a *AuthStore) restore(ctx context.Context) {
	token, err := a.storage.GetItem(ctx, storage.KeyAuthToken)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Auth check failed: %v", err)
		}
		return
	}

	var user model.User
	if err := storage.GetJSON(ctx, a.storage, storage.KeyUserData, &user); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return
		}
		log.Printf("Auth check failed: %v", err)
		a.clearStorage(ctx)
		return
	}

	a.user = &user
	a.token = token
	a.authenticated = true
}

// Login signs in with the fixture credentials of role
func (a *AuthStore) Login(ctx context.Context, credentials model.Credentials, role string) (Session, error) {
	defer a.loading.start()()

	res, err := a.api.Login(ctx, credentials, role)
	if err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}
	if !res.Success || res.User == nil {
		return Session{}, &ActionError{Op: "login", Message: res.Error}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	session := Session{User: *res.User, Token: res.Token}
	user := session.User
	a.user = &user
	a.token = session.Token
	a.authenticated = true

	if err := a.storage.SetItem(ctx, storage.KeyAuthToken, session.Token); err != nil {
		return session, fmt.Errorf("persist token: %w", err)
	}
	if err := storage.SetJSON(ctx, a.storage, storage.KeyUserData, session.User); err != nil {
		return session, fmt.Errorf("persist user: %w", err)
	}
	return session, nil
}

// Logout forgets the user. Memory is cleared before storage is touched, so
// IsAuthenticated is false as soon as Logout returns even if storage fails.
func (a *AuthStore) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.user = nil
	a.token = ""
	a.authenticated = false
	a.mu.Unlock()

	return a.clearStorage(ctx)
}

func (a *AuthStore) clearStorage(ctx context.Context) error {
	var errs []error
	for _, key := range []string{storage.KeyAuthToken, storage.KeyUserData} {
		if err := a.storage.RemoveItem(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// UpdateUser replaces the signed in user
func (a *AuthStore) UpdateUser(ctx context.Context, user model.User) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authenticated {
		return ErrNotAuthenticated
	}
	a.user = &user
	return storage.SetJSON(ctx, a.storage, storage.KeyUserData, user)
}

// User returns the signed in user
func (a *AuthStore) User() (model.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return model.User{}, false
	}
	u := *a.user
	u.Permissions = cloneSlice(a.user.Permissions)
	return u, true
}

// IsAuthenticated reports whether a user is signed in
func (a *AuthStore) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// Token returns the opaque session token, empty when signed out
func (a *AuthStore) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// Loading reports whether a login is in flight
func (a *AuthStore) Loading() bool {
	return a.loading.get()
}
