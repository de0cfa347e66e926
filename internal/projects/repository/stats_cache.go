package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/domain"
)

const statsKey = "projects:stats:overview"

// StatsCache keeps the last computed project statistics in Redis.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached statistics, or nil with no error on a miss.
func (c *StatsCache) Get(ctx context.Context) (*domain.Stats, error) {
	data, err := c.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stats cache: %w", err)
	}
	var st domain.Stats
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to decode stats cache: %w", err)
	}
	return &st, nil
}

func (c *StatsCache) Set(ctx context.Context, st *domain.Stats) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := c.client.Set(ctx, statsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stats cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached statistics.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, statsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats cache: %w", err)
	}
	return nil
}
