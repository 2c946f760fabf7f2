package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded files live. Paths are relative to the
// backend's root; implementations decide how they map to real locations.
type Storage interface {
	// Save writes content at the given path, creating parents as needed.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at the given path for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at the given path. Deleting a missing file
	// is not an error.
	Delete(ctx context.Context, path string) error
}
