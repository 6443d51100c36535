package trip

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tripgen/internal/types"
)

const cacheKeyPrefix = "tripgen:itinerary:"

// Cache stores successful generation payloads in Redis keyed by a
// fingerprint of the normalized request, so identical requests inside the
// TTL skip the provider round-trip entirely. A nil *Cache is a no-op.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: rdb, ttl: ttl}
}

// Fingerprint hashes the request fields that influence generation. Call it
// after validation so the resolved duration is part of the key.
func Fingerprint(req *types.TripRequest) string {
	payload, _ := json.Marshal(req)
	sum := sha256.Sum256(payload)
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *Cache) Get(ctx context.Context, req *types.TripRequest) (*types.GenerationResult, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, Fingerprint(req)).Bytes()
	if err != nil {
		return nil, false
	}
	var res types.GenerationResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false
	}
	return &res, true
}

// Set writes through; cache failures are not worth failing the request over.
func (c *Cache) Set(ctx context.Context, req *types.TripRequest, res *types.GenerationResult) {
	if c == nil || c.redis == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, Fingerprint(req), raw, c.ttl).Err()
}
