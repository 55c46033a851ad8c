package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("file not found")

// Storage defines the interface for file storage backends.
type Storage interface {
	// Put stores a file under key.
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get opens a stored file. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file. Returns nil if the file doesn't exist.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a file given its key.
	GetURL(key string) string
}
