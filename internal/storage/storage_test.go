package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/imob/internal/config"
	"github.com/dmitrijs2005/imob/internal/repositories/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cfgFor(storage, dsn string) *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.Storage = storage
	c.DSN = dsn
	return c
}

func TestOpen_Memory(t *testing.T) {
	repo, closer, err := Open(context.Background(), cfgFor(config.StorageMemory, ""))
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, &kv.MemoryRepository{}, repo)
}

func TestOpen_SQLiteFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "imob.db")

	repo, closer, err := Open(ctx, cfgFor(config.StorageSQLite, path))
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, "k", []byte(`"v"`)))
	require.NoError(t, closer.Close())

	repo, closer, err = Open(ctx, cfgFor(config.StorageSQLite, path))
	require.NoError(t, err)
	defer closer.Close()

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"v"`), got)
}

func TestOpen_SQLiteInMemory(t *testing.T) {
	ctx := context.Background()
	repo, closer, err := Open(ctx, cfgFor(config.StorageSQLite, ":memory:"))
	require.NoError(t, err)
	defer closer.Close()

	require.NoError(t, repo.SetMany(ctx, map[string][]byte{"a": []byte("1"), "b": []byte("2")}))
	v, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
}

func TestOpen_UnknownStorage(t *testing.T) {
	_, _, err := Open(context.Background(), cfgFor("floppy", ""))
	require.ErrorContains(t, err, `unknown storage "floppy"`)
}

func TestOpen_RedisBadURL(t *testing.T) {
	c := cfgFor(config.StorageRedis, "")
	c.RedisURL = "not-a-url"
	_, _, err := Open(context.Background(), c)
	require.Error(t, err)
}

func TestOpen_Redis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	c := cfgFor(config.StorageRedis, "")
	c.RedisURL = "redis://" + mr.Addr() + "/0"

	repo, closer, err := Open(ctx, c)
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, &kv.RedisRepository{}, repo)
	require.NoError(t, repo.Set(ctx, "k", []byte("v")))
	assert.True(t, mr.Exists(RedisPrefix+"k"))
}
