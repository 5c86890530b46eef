package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"scenic-route-service/internal/domain"
)

// RedisPOICache stores POI search results in Redis as JSON blobs with a TTL.
// Implements ports.POICache.
type RedisPOICache struct {
	client *redis.Client
}

func NewRedisPOICache(addr string) (*RedisPOICache, error) {
	if addr == "" {
		return nil, errors.New("redis address is empty")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisPOICache{client: client}, nil
}

func (c *RedisPOICache) Get(ctx context.Context, key string) ([]domain.POI, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}

	var pois []domain.POI
	if err := json.Unmarshal(payload, &pois); err != nil {
		// A corrupt entry behaves like a miss so the caller refetches.
		return nil, false, fmt.Errorf("decode cached pois for %q: %w", key, err)
	}

	return pois, true, nil
}

func (c *RedisPOICache) Put(ctx context.Context, key string, pois []domain.POI, ttl time.Duration) error {
	payload, err := json.Marshal(pois)
	if err != nil {
		return fmt.Errorf("encode pois for %q: %w", key, err)
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}

	return nil
}

func (c *RedisPOICache) Close() error {
	return c.client.Close()
}
