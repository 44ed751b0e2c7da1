package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
)

// GCSClient handles Google Cloud Storage operations.
type GCSClient struct {
	client *storage.Client
	bucket string
}

// NewGCSClient creates a new GCS client against the given bucket.
func NewGCSClient(ctx context.Context, bucketName string) (*GCSClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSClient{
		client: client,
		bucket: bucketName,
	}, nil
}

// Close closes the GCS client.
func (g *GCSClient) Close() error {
	return g.client.Close()
}

// StoreFile writes an object to the bucket with a content type derived
// from the path.
func (g *GCSClient) StoreFile(ctx context.Context, path string, data []byte) error {
	obj := g.client.Bucket(g.bucket).Object(path)

	writer := obj.NewWriter(ctx)
	writer.ContentType = GetContentType(path)
	writer.CacheControl = "no-cache, max-age=60"
	writer.Metadata = map[string]string{
		"stored-at": time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write object %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %s: %w", path, err)
	}
	return nil
}

// GetFile retrieves an object from the bucket.
func (g *GCSClient) GetFile(ctx context.Context, path string) ([]byte, error) {
	obj := g.client.Bucket(g.bucket).Object(path)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", path, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", path, err)
	}
	return data, nil
}
