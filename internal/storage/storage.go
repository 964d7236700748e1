// Package storage provides blob storage backends for uploaded media.
package storage

import (
	"context"
)

// Storage stores media blobs under opaque keys and serves them at public
// URLs. Implementations must be safe for concurrent use.
type Storage interface {
	// Upload stores content under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, content []byte) (string, error)
	// Delete removes the blob stored under key.
	Delete(ctx context.Context, key string) error
}
