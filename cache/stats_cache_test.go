package cache

import (
	"testing"
	"time"

	"github.com/Brahim-Amzil/3arida-sub000/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*StatsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewStatsCacheWithClient(client, ttl)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func sampleStats(petitionID uint) *models.PetitionStats {
	return &models.PetitionStats{
		PetitionID:       petitionID,
		TotalSignatures:  42,
		TargetSignatures: 1000,
		ProgressPercent:  4.2,
		ByLocation:       map[string]int{"Rabat, Morocco": 42},
		ByDay:            map[string]int{"2026-03-01": 42},
	}
}

func TestStatsCacheSetGet(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, sampleStats(1))

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, uint(42), got.TotalSignatures)
	assert.Equal(t, 42, got.ByLocation["Rabat, Morocco"])

	// A different petition is still a miss.
	_, ok = c.Get(2)
	assert.False(t, ok)
}

func TestStatsCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	c.Set(7, sampleStats(7))
	_, ok := c.Get(7)
	require.True(t, ok)

	c.Invalidate(7)
	_, ok = c.Get(7)
	assert.False(t, ok)
}

func TestStatsCacheTTLExpiry(t *testing.T) {
	c, mr := newTestCache(t, time.Second)

	c.Set(3, sampleStats(3))
	_, ok := c.Get(3)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)
	_, ok = c.Get(3)
	assert.False(t, ok)
}

func TestStatsCacheNilIsNoOp(t *testing.T) {
	var c *StatsCache

	_, ok := c.Get(1)
	assert.False(t, ok)
	c.Set(1, sampleStats(1))
	c.Invalidate(1)
	assert.NoError(t, c.Close())
}

func TestNewStatsCacheRejectsBadURL(t *testing.T) {
	_, err := NewStatsCache("not-a-url", time.Minute)
	assert.Error(t, err)
}
