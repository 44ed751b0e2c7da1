package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuraksworld/sl-market-friend-data/internal/config"
)

func TestNewClientLocal(t *testing.T) {
	cfg := &config.Config{LocalDataDir: t.TempDir()}

	client, err := NewClient(context.Background(), DeploymentLocal, cfg)
	require.NoError(t, err)
	defer client.Close()

	assert.IsType(t, &LocalClient{}, client)
}

func TestNewClientGCSRequiresBucket(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewClient(context.Background(), DeploymentGCS, cfg)
	assert.Error(t, err)
}

func TestNewClientUnsupportedMode(t *testing.T) {
	_, err := NewClient(context.Background(), DeploymentMode("s3"), &config.Config{})
	assert.Error(t, err)
}
