// Copyright (c) 2026 Campus. All rights reserved.

package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ozgekara/campus/internal/platform/constants"
)

// StatsCacheTTL bounds how stale the cached stats may get. Short on purpose:
// the dashboard refreshes often and the aggregate query is the expensive part.
const StatsCacheTTL = 60 * time.Second

// RedisStatsCache implements [StatsCache] on Redis.
type RedisStatsCache struct {
	client *redis.Client
}

// NewRedisStatsCache creates a new Redis-backed stats cache.
func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{client: client}
}

// Get returns the cached stats, or (nil, nil) on a cache miss.
func (cache *RedisStatsCache) Get(context context.Context) (*Stats, error) {
	payload, err := cache.client.Get(context, constants.RedisPrefixUserStats).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_stats_get_failed: %w", err)
	}

	stats := &Stats{}
	if err := json.Unmarshal(payload, stats); err != nil {
		// A corrupt cache entry is treated as a miss.
		return nil, nil
	}

	return stats, nil
}

// Set stores the stats snapshot with [StatsCacheTTL].
func (cache *RedisStatsCache) Set(context context.Context, stats *Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("redis_stats_marshal_failed: %w", err)
	}

	if err := cache.client.Set(context, constants.RedisPrefixUserStats, payload, StatsCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_stats_set_failed: %w", err)
	}

	return nil
}
