// Package cache stores rendered lesson fragments in Redis
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/edumynt/backend/internal/blocks"
	"github.com/edumynt/backend/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/zeebo/xxh3"
	"go.uber.org/zap"
)

const keyPrefix = "lesson:render:"

// Store is the subset of the Redis client used by the cache
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RenderCache caches rendered fragments per lesson content
//
// Keys include the render version and a hash of the raw content, so neither edited
// lessons nor changed templates hit stale entries.
// Redis failures are logged and behave like a miss.
type RenderCache struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewRenderCache creates a new Redis backed render cache
func NewRenderCache(store Store, ttl time.Duration, logger *zap.Logger) *RenderCache {
	return &RenderCache{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Key returns the cache key for a lesson's raw content
func Key(lessonID string, content []byte) string {
	return versionedKey(blocks.RenderVersion, lessonID, content)
}

func versionedKey(version int, lessonID string, content []byte) string {
	return fmt.Sprintf("%sv%d:%s:%016x", keyPrefix, version, lessonID, xxh3.Hash(content))
}

// Get returns the cached fragments for the lesson content, if present
func (c *RenderCache) Get(ctx context.Context, lessonID string, content []byte) ([]models.Fragment, bool) {
	key := Key(lessonID, content)

	raw, err := c.store.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("failed to read render cache", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var fragments []models.Fragment
	if err := json.Unmarshal(raw, &fragments); err != nil {
		c.logger.Warn("failed to decode cached fragments", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	return fragments, true
}

// Set stores fragments for the lesson content
func (c *RenderCache) Set(ctx context.Context, lessonID string, content []byte, fragments []models.Fragment) {
	key := Key(lessonID, content)

	raw, err := json.Marshal(fragments)
	if err != nil {
		c.logger.Warn("failed to encode fragments", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.store.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write render cache", zap.String("key", key), zap.Error(err))
	}
}

// NoopCache is used when Redis is not configured
type NoopCache struct{}

// Get always misses
func (NoopCache) Get(ctx context.Context, lessonID string, content []byte) ([]models.Fragment, bool) {
	return nil, false
}

// Set discards the fragments
func (NoopCache) Set(ctx context.Context, lessonID string, content []byte, fragments []models.Fragment) {
}
