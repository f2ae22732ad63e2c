package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"netanyaRelay/internal/domain"
	"netanyaRelay/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

const HealthKey = "downstream:health"

// HealthCache keeps the last downstream probe result in Redis. Entries expire
// after ttl so a stalled prober reads as unknown rather than stale healthy.
type HealthCache struct {
	client *goredis.Client
	key    string
	ttl    time.Duration
}

func NewHealthCache(r *Redis, ttl time.Duration) *HealthCache {
	return &HealthCache{
		client: r.Client,
		key:    HealthKey,
		ttl:    ttl,
	}
}

func (c *HealthCache) Get(ctx context.Context) (domain.DownstreamHealth, error) {
	var h domain.DownstreamHealth

	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return h, e.ErrCacheMiss
		}
		return h, e.Wrap("redis get health", err)
	}

	if err := json.Unmarshal(data, &h); err != nil {
		return h, e.Wrap("decode cached health", err)
	}
	return h, nil
}

func (c *HealthCache) Set(ctx context.Context, h domain.DownstreamHealth) error {
	b, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, c.ttl).Err()
}
