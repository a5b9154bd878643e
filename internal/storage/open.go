package storage

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/redis/go-redis/v9"

	"aps-backend/internal/config"
	"aps-backend/internal/database"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the backend selected by cfg. The returned closer releases its connection.
func Open(ctx context.Context, cfg *config.Config) (Storage, io.Closer, error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return NewMemory(), nopCloser{}, nil

	case config.StoragePostgres:
		db, err := database.NewDBInstance(&database.DBConfig{
			Host:      cfg.Database.Host,
			Port:      cfg.Database.Port,
			User:      cfg.Database.User,
			Password:  cfg.Database.Password,
			DBName:    cfg.Database.Name,
			Constr:    cfg.Database.ConnStr,
			UseConstr: cfg.Database.UseConnStr,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres storage: %w", err)
		}
		s := NewDB(db)
		return s, s, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("open redis storage: %w", err)
		}
		log.Printf("Connected to redis at %s", cfg.Redis.Addr)
		s := NewRedis(client, "")
		return s, s, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
}
