package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCache_RoundTrip(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	type entry struct {
		Amount int64  `json:"amount"`
		Status string `json:"status"`
	}

	found, err := GetCache(ctx, rdb, "k", &entry{})
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, SetCache(ctx, rdb, "k", entry{Amount: 500, Status: "created"}, time.Minute))

	var got entry
	found, err = GetCache(ctx, rdb, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, entry{Amount: 500, Status: "created"}, got)

	require.NoError(t, DeleteCache(ctx, rdb, "k"))
	found, err = GetCache(ctx, rdb, "k", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestHistoryCacheKey(t *testing.T) {
	require.Equal(t, "payhistory:user:12", HistoryCacheKey(12))
}
