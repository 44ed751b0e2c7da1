package storage

import (
	"context"
	"fmt"

	"github.com/nuraksworld/sl-market-friend-data/internal/config"
)

// DeploymentMode represents the deployment environment.
type DeploymentMode string

const (
	DeploymentLocal DeploymentMode = "local"
	DeploymentGCS   DeploymentMode = "gcs"
)

// NewClient creates a storage client based on deployment mode and
// configuration.
func NewClient(ctx context.Context, mode DeploymentMode, cfg *config.Config) (Client, error) {
	switch mode {
	case DeploymentLocal:
		dataDir := cfg.LocalDataDir
		if dataDir == "" {
			dataDir = "data"
		}
		localClient, err := NewLocalClient(dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
		}
		return localClient, nil

	case DeploymentGCS:
		if cfg.GCSBucket == "" {
			return nil, fmt.Errorf("GCS_BUCKET is required for gcs deployment mode")
		}
		gcsClient, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return gcsClient, nil

	default:
		return nil, fmt.Errorf("unsupported deployment mode: %s", mode)
	}
}
