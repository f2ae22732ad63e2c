package redis

import (
	"context"
	"sync"
	"time"

	"netanyaRelay/internal/domain"
	"netanyaRelay/pkg/e"
)

// MemoryHealthCache is used when no Redis address is configured.
type MemoryHealthCache struct {
	mu      sync.RWMutex
	health  domain.DownstreamHealth
	expires time.Time
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryHealthCache(ttl time.Duration) *MemoryHealthCache {
	return &MemoryHealthCache{ttl: ttl, now: time.Now}
}

func (c *MemoryHealthCache) Get(_ context.Context) (domain.DownstreamHealth, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.expires.IsZero() || !c.now().Before(c.expires) {
		return domain.DownstreamHealth{}, e.ErrCacheMiss
	}
	return c.health, nil
}

func (c *MemoryHealthCache) Set(_ context.Context, h domain.DownstreamHealth) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.health = h
	c.expires = c.now().Add(c.ttl)
	return nil
}
