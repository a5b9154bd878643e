package storage

import (
	"context"
	"fmt"
)

// HealthChecker is implemented by backends that hold a connection
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

// Health reports the status of s. Backends without a connection are always up.
func Health(ctx context.Context, s Storage) map[string]string {
	if hc, ok := s.(HealthChecker); ok {
		return hc.Health(ctx)
	}
	return map[string]string{"status": "up"}
}

// Health implements HealthChecker
func (m *Memory) Health(context.Context) map[string]string {
	return map[string]string{"status": "up", "backend": "memory"}
}

// Health implements HealthChecker
func (s *DB) Health(ctx context.Context) map[string]string {
	stats := s.db.Health(ctx)
	stats["backend"] = "postgres"
	return stats
}

// Health implements HealthChecker
func (s *Redis) Health(ctx context.Context) map[string]string {
	stats := map[string]string{"backend": "redis"}
	if err := s.client.Ping(ctx).Err(); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("redis down: %v", err)
		return stats
	}
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	return stats
}
