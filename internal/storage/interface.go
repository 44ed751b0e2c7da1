package storage

import "context"

// Client is the storage backend a snapshot run writes through.
type Client interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a file at the given path
	StoreFile(ctx context.Context, path string, data []byte) error

	// GetFile retrieves a file from the given path
	GetFile(ctx context.Context, path string) ([]byte, error)
}
