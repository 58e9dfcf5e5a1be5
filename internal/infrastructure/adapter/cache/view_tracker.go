// Package cache holds the unique-view trackers used by portfolio stats.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	cacheport "github.com/guidy-app/joblight/internal/domain/port/cache"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/config"
)

// defaultViewTTL keeps a visitor marker a little longer than the day it belongs to
const defaultViewTTL = 48 * time.Hour

// viewKey is one marker per portfolio, visitor and UTC day
func viewKey(portfolioUserID uint64, visitorKey string, at time.Time) string {
	return fmt.Sprintf("joblight:view:%d:%s:%s", portfolioUserID, at.UTC().Format("2006-01-02"), visitorKey)
}

// NewViewTracker returns the redis tracker when an address is configured, the in-memory one otherwise.
// The returned close function releases the redis connection.
func NewViewTracker(ctx context.Context, cfg config.RedisConfig, logger coreport.Logger) (cacheport.ViewTracker, func() error, error) {
	ttl := cfg.ViewTTL
	if ttl <= 0 {
		ttl = defaultViewTTL
	}

	if cfg.Addr == "" {
		logger.Info("Using in-memory view tracker", map[string]any{"ttl": ttl.String()})
		return NewMemoryViewTracker(ttl), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		logger.Error("Redis connection failed", map[string]any{"addr": cfg.Addr, "error": err.Error()})
		return nil, nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("Redis connection established", map[string]any{"addr": cfg.Addr, "db": cfg.DB})
	return NewRedisViewTracker(client, ttl, logger), client.Close, nil
}
