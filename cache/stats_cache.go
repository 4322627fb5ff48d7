// Package cache provides an optional redis-backed cache for petition
// statistics. A nil *StatsCache is a valid no-op cache so callers never
// have to branch on whether redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Brahim-Amzil/3arida-sub000/models"

	"github.com/redis/go-redis/v9"
)

type StatsCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStatsCache connects to redis via URL and verifies the connection.
func NewStatsCache(redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewStatsCacheWithClient(client, ttl), nil
}

// NewStatsCacheWithClient wraps an existing redis client.
func NewStatsCacheWithClient(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StatsCache{
		client: client,
		prefix: "stats:",
		ttl:    ttl,
	}
}

func (c *StatsCache) key(petitionID uint) string {
	return c.prefix + strconv.FormatUint(uint64(petitionID), 10)
}

func (c *StatsCache) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}

// Get returns the cached stats for a petition, or false on miss, expiry, or
// when the cache is not configured.
func (c *StatsCache) Get(petitionID uint) (*models.PetitionStats, bool) {
	if c == nil {
		return nil, false
	}

	ctx, cancel := c.ctx()
	defer cancel()

	raw, err := c.client.Get(ctx, c.key(petitionID)).Result()
	if err != nil {
		return nil, false
	}

	var stats models.PetitionStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, false
	}

	return &stats, true
}

// Set stores stats with the configured TTL. Failures are ignored, the cache
// is best-effort.
func (c *StatsCache) Set(petitionID uint, stats *models.PetitionStats) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	ctx, cancel := c.ctx()
	defer cancel()

	c.client.Set(ctx, c.key(petitionID), raw, c.ttl)
}

// Invalidate drops the cached entry after a new signature lands.
func (c *StatsCache) Invalidate(petitionID uint) {
	if c == nil {
		return
	}

	ctx, cancel := c.ctx()
	defer cancel()

	c.client.Del(ctx, c.key(petitionID))
}

func (c *StatsCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
