// Package blob stores uploaded resume files in an object store
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"aps-backend/internal/config"
)

// ErrNotFound is returned by Get when the object does not exist
var ErrNotFound = errors.New("blob: object not found")

// Sink is an object store
type Sink interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// ObjectKey builds a collision free key under prefix that keeps the extension of filename
func ObjectKey(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", strings.TrimSuffix(prefix, "/"), uuid.NewString(), ext)
}

// Open builds the sink selected by cfg
func Open(ctx context.Context, cfg *config.Config) (Sink, error) {
	switch cfg.Blob.Backend {
	case config.BlobDiscard:
		return Discard{}, nil
	case config.BlobGCS:
		return NewCloudStorageClient(ctx, cfg.Blob.Bucket)
	case config.BlobS3:
		return NewS3Client(ctx, cfg.Blob.Bucket, cfg.Blob.Region, cfg.Blob.Endpoint)
	}
	return nil, fmt.Errorf("unknown blob backend: %s", cfg.Blob.Backend)
}

// Discard accepts and forgets every object
type Discard struct{}

// Put drains r
func (Discard) Put(_ context.Context, _ string, r io.Reader, _ string) error {
	_, err := io.Copy(io.Discard, r)
	return err
}

// Get always fails with ErrNotFound
func (Discard) Get(context.Context, string) (io.ReadCloser, error) {
	return nil, ErrNotFound
}

// Delete is a no-op
func (Discard) Delete(context.Context, string) error { return nil }

// List is always empty
func (Discard) List(context.Context, string) ([]string, error) { return nil, nil }

// Close is a no-op
func (Discard) Close() error { return nil }
