package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mlmusic/catalog"
	"mlmusic/logger"

	"github.com/redis/go-redis/v9"
)

const homeFeedKey = "mlmusic:feed:home"

// FeedCache keeps the assembled home feed in Redis between bulk status
// changes. Every cache miss or Redis hiccup falls back to the database,
// so a dead Redis only costs latency.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache wraps a Redis client. ttl <= 0 disables caching; the
// returned cache then behaves as always-miss.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{client: client, ttl: ttl}
}

func (c *FeedCache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

// GetHomeFeed returns the cached feed, if any.
func (c *FeedCache) GetHomeFeed(ctx context.Context) (*catalog.HomeFeed, bool) {
	if !c.enabled() {
		return nil, false
	}

	payload, err := c.client.Get(ctx, homeFeedKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("feed cache read failed", logger.ErrorField(err))
		}
		return nil, false
	}

	var feed catalog.HomeFeed
	if err := json.Unmarshal(payload, &feed); err != nil {
		logger.Warn("feed cache entry is corrupt, dropping it", logger.ErrorField(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return &feed, true
}

// SetHomeFeed stores the feed with the configured TTL.
func (c *FeedCache) SetHomeFeed(ctx context.Context, feed *catalog.HomeFeed) {
	if !c.enabled() {
		return
	}

	payload, err := json.Marshal(feed)
	if err != nil {
		logger.Warn("feed cache marshal failed", logger.ErrorField(err))
		return
	}
	if err := c.client.Set(ctx, homeFeedKey, payload, c.ttl).Err(); err != nil {
		logger.Warn("feed cache write failed", logger.ErrorField(err))
	}
}

// Invalidate drops the cached feed, called after bulk status changes.
func (c *FeedCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.client.Del(ctx, homeFeedKey).Err(); err != nil {
		logger.Warn("feed cache invalidation failed", logger.ErrorField(err))
	}
}
