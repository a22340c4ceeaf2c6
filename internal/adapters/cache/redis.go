// Package cache provides an optional Redis layer in front of the reporting
// queries. Summaries are recomputed from the stores on a miss, so a missing
// or failing Redis never affects correctness.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const summaryTTL = 5 * time.Minute

// SummaryCache stores serialized board summaries. Implementations must treat
// every failure as a miss.
type SummaryCache interface {
	GetSummary(ctx context.Context, boardID string, out any) bool
	SetSummary(ctx context.Context, boardID string, value any)
	InvalidateSummary(ctx context.Context, boardID string)
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the given address. A ping failure is returned so
// the caller can decide to run without a cache.
func NewRedisCache(ctx context.Context, addr string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis at %s: %w", addr, err)
	}
	return &RedisCache{client: client}, nil
}

var _ SummaryCache = (*RedisCache)(nil)

func summaryKey(boardID string) string {
	return "summary:board:" + boardID
}

func (c *RedisCache) GetSummary(ctx context.Context, boardID string, out any) bool {
	val, err := c.client.Get(ctx, summaryKey(boardID)).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

func (c *RedisCache) SetSummary(ctx context.Context, boardID string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	// Best effort, errors just mean the next read recomputes.
	c.client.Set(ctx, summaryKey(boardID), data, summaryTTL)
}

func (c *RedisCache) InvalidateSummary(ctx context.Context, boardID string) {
	c.client.Del(ctx, summaryKey(boardID))
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoopCache is used when no Redis address is configured.
type NoopCache struct{}

var _ SummaryCache = NoopCache{}

func (NoopCache) GetSummary(ctx context.Context, boardID string, out any) bool { return false }
func (NoopCache) SetSummary(ctx context.Context, boardID string, value any)    {}
func (NoopCache) InvalidateSummary(ctx context.Context, boardID string)        {}
