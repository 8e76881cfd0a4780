package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

func insightsKey(userID string) string {
	return fmt.Sprintf("insights:%s", userID)
}

type RedisInsightsCache struct {
	rdb *redis.Client
}

func NewRedisInsightsCache(rdb *redis.Client) *RedisInsightsCache {
	return &RedisInsightsCache{rdb: rdb}
}

func (c *RedisInsightsCache) Get(ctx context.Context, userID string) (*domain.InsightsReport, error) {
	val, err := c.rdb.Get(ctx, insightsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis: get insights failed: %w", err)
	}

	var report domain.InsightsReport
	if err := json.Unmarshal(val, &report); err != nil {
		c.rdb.Del(ctx, insightsKey(userID))
		return nil, domain.ErrCacheMiss
	}
	return &report, nil
}

func (c *RedisInsightsCache) Set(ctx context.Context, userID string, report *domain.InsightsReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, insightsKey(userID), data, ttl).Err()
}

func (c *RedisInsightsCache) Invalidate(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, insightsKey(userID)).Err()
}

type memoryEntry struct {
	report    domain.InsightsReport
	expiresAt time.Time
}

// InMemoryInsightsCache is the single-process fallback for RedisInsightsCache.
type InMemoryInsightsCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewInMemoryInsightsCache() *InMemoryInsightsCache {
	return &InMemoryInsightsCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *InMemoryInsightsCache) Get(ctx context.Context, userID string) (*domain.InsightsReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[userID]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		delete(c.entries, userID)
		return nil, domain.ErrCacheMiss
	}
	report := e.report
	return &report, nil
}

func (c *InMemoryInsightsCache) Set(ctx context.Context, userID string, report *domain.InsightsReport, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := memoryEntry{report: *report}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.entries[userID] = e
	return nil
}

func (c *InMemoryInsightsCache) Invalidate(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, userID)
	return nil
}
