package cache

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRedisEnv names the address for the integration tests below. They
// exercise a real Redis instance and are skipped when it is unset.
const testRedisEnv = "STOCKNEST_TEST_REDIS_ADDR"

func testCache(t *testing.T) *RedisCache {
	t.Helper()

	addr := os.Getenv(testRedisEnv)
	if addr == "" {
		t.Skipf("%s not set, skipping Redis integration test", testRedisEnv)
	}

	c, err := NewRedisCache(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

type cachedSummary struct {
	ItemCount int `json:"itemCount"`
}

func TestSummaryRoundTrip(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	c.InvalidateSummary(ctx, "b1")

	var out cachedSummary
	assert.False(t, c.GetSummary(ctx, "b1", &out), "empty cache should miss")

	c.SetSummary(ctx, "b1", cachedSummary{ItemCount: 7})
	require.True(t, c.GetSummary(ctx, "b1", &out))
	assert.Equal(t, 7, out.ItemCount)

	c.InvalidateSummary(ctx, "b1")
	assert.False(t, c.GetSummary(ctx, "b1", &out), "invalidated key should miss")
}

func TestNoopCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := NoopCache{}

	c.SetSummary(ctx, "b1", cachedSummary{ItemCount: 1})

	var out cachedSummary
	assert.False(t, c.GetSummary(ctx, "b1", &out))
}
