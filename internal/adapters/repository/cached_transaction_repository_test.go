package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		t.Skipf("Skipping Redis integration test: %v", err)
	}

	require.NoError(t, rdb.FlushDB(context.Background()).Err())
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestCachedTransactionRepository_Integration(t *testing.T) {
	rdb := setupTestRedis(t)
	ctx := context.Background()

	inner := NewInMemoryTransactionRepository()
	repo := NewCachedTransactionRepository(inner, rdb, time.Minute, nil)

	tx, _ := domain.NewTransaction("u1", "coffee", 3.5, "expense", time.Now(), &domain.Category{Name: "Cafe"})
	require.NoError(t, repo.Create(ctx, tx))

	t.Run("First read fills the cache", func(t *testing.T) {
		list, err := repo.ListByUserID(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 1)

		exists, err := rdb.Exists(ctx, "transactions:u1").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists)
	})

	t.Run("Cached read survives a bypassing write", func(t *testing.T) {
		direct, _ := domain.NewTransaction("u1", "bypass", 1, "expense", time.Now(), nil)
		require.NoError(t, inner.Create(ctx, direct))

		list, err := repo.ListByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, list, 1)
		require.NotNil(t, list[0].Category)
		assert.Equal(t, "Cafe", list[0].Category.Name)
	})

	t.Run("Writes through the decorator invalidate", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, tx.ID, "u1"))

		list, err := repo.ListByUserID(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "bypass", list[0].Description)
	})

	t.Run("Corrupted entries are discarded", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "transactions:u1", "{not json", time.Minute).Err())

		list, err := repo.ListByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
