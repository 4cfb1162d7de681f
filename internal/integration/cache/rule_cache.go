// Package cache implements the application cache adapters on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/domain/entity"
)

const ruleCacheKeyPrefix = "category_rules:"

// redisRuleCache implements adapter.RuleCache on Redis. Entries are whole
// JSON-encoded rule lists keyed by user; Put replaces, Invalidate deletes.
type redisRuleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRuleCache creates a new Redis-backed rule cache instance.
func NewRedisRuleCache(client *redis.Client, ttl time.Duration) adapter.RuleCache {
	return &redisRuleCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached rules for a user. ok is false on a miss.
func (c *redisRuleCache) Get(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryRule, bool, error) {
	payload, err := c.client.Get(ctx, ruleCacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var rules []*entity.CategoryRule
	if err := json.Unmarshal(payload, &rules); err != nil {
		// A corrupt entry behaves like a miss; the caller refills it.
		return nil, false, nil
	}
	return rules, true, nil
}

// Put stores the rules for a user, replacing any previous entry.
func (c *redisRuleCache) Put(ctx context.Context, userID uuid.UUID, rules []*entity.CategoryRule) error {
	payload, err := json.Marshal(rules)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ruleCacheKey(userID), payload, c.ttl).Err()
}

// Invalidate drops the cached entry for a user.
func (c *redisRuleCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, ruleCacheKey(userID)).Err()
}

func ruleCacheKey(userID uuid.UUID) string {
	return ruleCacheKeyPrefix + userID.String()
}
