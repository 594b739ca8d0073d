package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rewardstracker/internal/config"
)

var dbCounter atomic.Int64

type sample struct {
	Name  string            `json:"name"`
	Tags  map[string]string `json:"tags"`
	Count int               `json:"count"`
}

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	s, err := NewGormStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGormStore_SetThenGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	in := sample{Name: "profile", Tags: map[string]string{"city": "London"}, Count: 3}
	require.NoError(t, s.Set(ctx, "profileData", in))

	var out sample
	found, err := s.Get(ctx, "profileData", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

func TestGormStore_GetAbsentKey(t *testing.T) {
	s := setupStore(t)

	out := "untouched"
	found, err := s.Get(context.Background(), "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "untouched", out)
}

func TestGormStore_SetOverwrites(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "hasConsented", false))
	require.NoError(t, s.Set(ctx, "hasConsented", true))

	var consented bool
	found, err := s.Get(ctx, "hasConsented", &consented)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, consented)
}

func TestGormStore_Delete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "userId", "abc"))
	require.NoError(t, s.Delete(ctx, "userId"))
	require.NoError(t, s.Delete(ctx, "userId"))

	var id string
	found, err := s.Get(ctx, "userId", &id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGormStore_SetRejectsUnencodableValue(t *testing.T) {
	s := setupStore(t)

	err := s.Set(context.Background(), "bad", make(chan int))
	assert.Error(t, err)
}

func TestGormStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onboarding.db")
	ctx := context.Background()

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "userId", "0190-abc"))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	var id string
	found, err := second.Get(ctx, "userId", &id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "0190-abc", id)
}

func TestOpen(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		s, err := Open(context.Background(), config.StoreConfig{
			Driver: config.StoreDriverSQLite,
			Path:   filepath.Join(t.TempDir(), "store.db"),
		})
		require.NoError(t, err)
		defer s.Close()
		assert.IsType(t, &GormStore{}, s)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open(context.Background(), config.StoreConfig{Driver: "etcd"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "etcd")
	})
}
