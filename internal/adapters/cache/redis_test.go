package cache

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupTestRedis(t *testing.T) *redis.Client {
	_ = godotenv.Load("../../../.env")

	db, _ := strconv.Atoi(getEnv("REDIS_TEST_DB", "1"))
	rdb, err := NewRedisClient(RedisOptions{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}

	require.NoError(t, rdb.FlushDB(context.Background()).Err(), "Failed to flush test DB")
	return rdb
}

func TestRedisDailyStore_Integration(t *testing.T) {
	rdb := setupTestRedis(t)
	defer rdb.Close()

	ctx := context.Background()
	store := NewRedisDailyStore(rdb, zap.NewNop())

	t.Run("Missing key is a miss", func(t *testing.T) {
		_, ok, err := store.Load(ctx, "inspiration")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Save and Load round trip with TTL", func(t *testing.T) {
		rec := domain.DailyRecord{Date: "2026-10-18", Payload: json.RawMessage(`{"quote":"q"}`)}
		require.NoError(t, store.Save(ctx, "inspiration", rec))

		got, ok, err := store.Load(ctx, "inspiration")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "2026-10-18", got.Date)
		assert.JSONEq(t, `{"quote":"q"}`, string(got.Payload))

		ttl, err := rdb.TTL(ctx, "daily:inspiration").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 24*time.Hour)
	})

	t.Run("Cached absence is stored as null", func(t *testing.T) {
		rec := domain.DailyRecord{Date: "2026-10-18", Payload: json.RawMessage(`null`)}
		require.NoError(t, store.Save(ctx, "daily_book", rec))

		got, ok, err := store.Load(ctx, "daily_book")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "null", string(got.Payload))
	})

	t.Run("Corrupted record is dropped", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "daily:broken", "not-json", time.Minute).Err())

		_, ok, err := store.Load(ctx, "broken")
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = rdb.Get(ctx, "daily:broken").Result()
		assert.ErrorIs(t, err, redis.Nil)
	})
}

func TestRedisDailyStore_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:9999", DialTimeout: 200 * time.Millisecond})
	defer rdb.Close()

	store := NewRedisDailyStore(rdb, zap.NewNop())

	_, ok, err := store.Load(context.Background(), "inspiration")
	assert.Error(t, err)
	assert.False(t, ok)

	err = store.Save(context.Background(), "inspiration", domain.DailyRecord{Date: "2026-10-18", Payload: json.RawMessage(`null`)})
	assert.Error(t, err)
}
