package redis

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"netanyaRelay/internal/config"
	"netanyaRelay/internal/domain"
	"netanyaRelay/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r, err := NewRedis(context.Background(), config.RedisConfig{Addr: mr.Addr()}, newTestLogger())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return mr, r
}

func sampleHealth() domain.DownstreamHealth {
	return domain.DownstreamHealth{
		Status:     domain.HealthUp,
		Mode:       "live",
		StatusCode: 200,
		LatencyMS:  42,
		CheckedAt:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestHealthCache_RoundTripAndTTL(t *testing.T) {
	t.Parallel()

	mr, r := newMiniRedis(t)
	cache := NewHealthCache(r, time.Minute)
	ctx := context.Background()

	if _, err := cache.Get(ctx); !errors.Is(err, e.ErrCacheMiss) {
		t.Fatalf("expected cache miss, got %v", err)
	}

	want := sampleHealth()
	if err := cache.Set(ctx, want); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != want.Status || got.LatencyMS != want.LatencyMS || !got.CheckedAt.Equal(want.CheckedAt) {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if ttl := mr.TTL(HealthKey); ttl != time.Minute {
		t.Fatalf("ttl: got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := cache.Get(ctx); !errors.Is(err, e.ErrCacheMiss) {
		t.Fatalf("expected miss after expiry, got %v", err)
	}
}

func TestHealthCache_CorruptEntry(t *testing.T) {
	t.Parallel()

	mr, r := newMiniRedis(t)
	if err := mr.Set(HealthKey, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := NewHealthCache(r, time.Minute).Get(context.Background()); err == nil || errors.Is(err, e.ErrCacheMiss) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestNewRedis_Unreachable(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedis(context.Background(), config.RedisConfig{Addr: addr}, newTestLogger()); err == nil {
		t.Fatal("expected ping failure")
	}
}

func TestMemoryHealthCache_Expiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	cache := NewMemoryHealthCache(time.Minute)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	if _, err := cache.Get(ctx); !errors.Is(err, e.ErrCacheMiss) {
		t.Fatalf("expected miss, got %v", err)
	}
	_ = cache.Set(ctx, sampleHealth())
	if got, err := cache.Get(ctx); err != nil || got.Status != domain.HealthUp {
		t.Fatalf("got %+v, %v", got, err)
	}

	now = now.Add(time.Minute)
	if _, err := cache.Get(ctx); !errors.Is(err, e.ErrCacheMiss) {
		t.Fatalf("expected miss after ttl, got %v", err)
	}
}
