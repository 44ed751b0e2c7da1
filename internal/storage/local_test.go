package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalClientStoreAndGet(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	data := []byte(`{"app":"SL Market Friend"}`)

	require.NoError(t, client.StoreFile(ctx, "latest/prices.json", data))

	got, err := client.GetFile(ctx, "latest/prices.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLocalClientCreatesNestedDirs(t *testing.T) {
	base := t.TempDir()
	client, err := NewLocalClient(base)
	require.NoError(t, err)

	ctx := context.Background()
	path := "snapshots/2025/06/01/prices-2025-06-01-12-00-00.json"
	require.NoError(t, client.StoreFile(ctx, path, []byte("{}")))

	_, err = os.Stat(filepath.Join(base, filepath.FromSlash(path)))
	assert.NoError(t, err)
}

func TestLocalClientGetMissingFile(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	require.NoError(t, err)

	_, err = client.GetFile(context.Background(), "latest/prices.json")
	assert.Error(t, err)
}

func TestLocalClientOverwrite(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, client.StoreFile(ctx, "latest/prices.json", []byte("old")))
	require.NoError(t, client.StoreFile(ctx, "latest/prices.json", []byte("new")))

	got, err := client.GetFile(ctx, "latest/prices.json")
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}
