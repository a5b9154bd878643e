package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis stores items as plain string keys, optionally namespaced by a prefix
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps client. Keys are written as prefix+key.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// GetItem implements Storage
func (s *Redis) GetItem(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return v, err
}

// SetItem implements Storage
func (s *Redis) SetItem(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// RemoveItem implements Storage
func (s *Redis) RemoveItem(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Close closes the client
func (s *Redis) Close() error {
	return s.client.Close()
}
