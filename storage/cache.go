package storage

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const listingsKey = "listings:all"

// ListingCache keeps the serialized GET /listings response in redis for a
// short window. A nil *ListingCache is valid and disables caching, which
// is what the tests use.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListingCache(addr string, ttl time.Duration) *ListingCache {
	return &ListingCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// Get returns the cached payload, if any. Redis errors are treated as a
// miss; the database remains the source of truth.
func (c *ListingCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, listingsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *ListingCache) Set(ctx context.Context, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, listingsKey, payload, c.ttl)
}

// Invalidate drops the cached listings; called after every listing write.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, listingsKey)
}
