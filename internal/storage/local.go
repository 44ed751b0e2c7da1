package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalClient handles local file system storage operations.
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a local storage client rooted at baseDir.
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}
	return &LocalClient{baseDir: baseDir}, nil
}

// Close is a no-op for local storage.
func (l *LocalClient) Close() error {
	return nil
}

// StoreFile writes a file under the base directory, creating parent
// directories as needed.
func (l *LocalClient) StoreFile(ctx context.Context, path string, data []byte) error {
	fullPath := filepath.Join(l.baseDir, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// GetFile reads a file from under the base directory.
func (l *LocalClient) GetFile(ctx context.Context, path string) ([]byte, error) {
	fullPath := filepath.Join(l.baseDir, filepath.FromSlash(path))
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}
