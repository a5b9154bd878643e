// Package storage is the persisted key/value store the state containers keep
// their session data in. Values are JSON strings.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys written by the state containers
const (
	KeyAuthToken   = "aps_auth_token"
	KeyUserData    = "aps_user_data"
	KeyAppliedJobs = "aps_applied_jobs"
	KeyHRDashboard = "aps_hr_dashboard"
)

// Keys lists every key the application owns
var Keys = []string{KeyAuthToken, KeyUserData, KeyAppliedJobs, KeyHRDashboard}

// ErrNotFound is returned by GetItem when key holds no value
var ErrNotFound = errors.New("storage: key not found")

// Storage is a string key/value store. Implementations must be safe for concurrent use.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem succeeds when key is absent
	RemoveItem(ctx context.Context, key string) error
}

// GetJSON decodes the value under key into v
func GetJSON(ctx context.Context, s Storage, key string, v any) error {
	raw, err := s.GetItem(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it under key
func SetJSON(ctx context.Context, s Storage, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.SetItem(ctx, key, string(raw))
}

// Clear removes every application key from s
func Clear(ctx context.Context, s Storage) error {
	for _, key := range Keys {
		if err := s.RemoveItem(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}
