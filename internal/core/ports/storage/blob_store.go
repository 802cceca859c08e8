package storage

import (
	"context"
	"io"
	"time"
)

// Object describes a file handed to a BlobStore.
type Object struct {
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
}

// BlobStore persists uploaded files outside the database.
type BlobStore interface {
	// Put stores the object under its key and returns the key actually used.
	Put(ctx context.Context, obj Object) (string, error)

	// URL returns a time-limited download link for key.
	URL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Delete removes the object. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
