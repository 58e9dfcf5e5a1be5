package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
)

// RedisViewTracker stores one expiring marker per visitor and day
type RedisViewTracker struct {
	client redis.Cmdable
	ttl    time.Duration
	logger coreport.Logger
}

// NewRedisViewTracker creates a tracker on an existing client
func NewRedisViewTracker(client redis.Cmdable, ttl time.Duration, logger coreport.Logger) *RedisViewTracker {
	return &RedisViewTracker{client: client, ttl: ttl, logger: logger}
}

// MarkViewed sets the marker with SET NX EX; it is a first view only when the key was created
func (t *RedisViewTracker) MarkViewed(ctx context.Context, portfolioUserID uint64, visitorKey string, at time.Time) (bool, error) {
	key := viewKey(portfolioUserID, visitorKey, at)

	created, err := t.client.SetNX(ctx, key, at.Unix(), t.ttl).Result()
	if err != nil {
		t.logger.Error("Redis SetNX failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return false, err
	}
	return created, nil
}
