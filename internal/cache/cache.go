package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

const defaultTTL = time.Hour

// Cache wraps a Redis client and provides typed get/set/delete for
// generated travel plans.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with a 1-hour TTL.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

// key returns the Redis key for the given destination.
func key(destination string) string {
	return "plan:" + strings.ToLower(strings.TrimSpace(destination))
}

// Get retrieves a cached plan.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, destination string) (*trip.TravelPlan, error) {
	val, err := c.client.Get(ctx, key(destination)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for destination %s: %w", destination, err)
	}

	var plan trip.TravelPlan
	if err := json.Unmarshal([]byte(val), &plan); err != nil {
		return nil, fmt.Errorf("unmarshaling cached plan for destination %s: %w", destination, err)
	}

	return &plan, nil
}

// Set stores a plan in cache with the configured TTL.
func (c *Cache) Set(ctx context.Context, destination string, plan *trip.TravelPlan) error {
	if plan == nil {
		return nil
	}

	b, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshaling plan for destination %s: %w", destination, err)
	}

	if err := c.client.Set(ctx, key(destination), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for destination %s: %w", destination, err)
	}

	return nil
}

// Delete removes the cached plan for the given destination.
func (c *Cache) Delete(ctx context.Context, destination string) error {
	if err := c.client.Del(ctx, key(destination)).Err(); err != nil {
		return fmt.Errorf("cache delete for destination %s: %w", destination, err)
	}
	return nil
}
