package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"debt-planner/repository"
)

// resultCache memoizes successful calculations keyed by a hash of their
// normalized input. Cache failures never fail a calculation.
type resultCache struct {
	repo repository.CacheRepository
	ttl  time.Duration
	log  *zap.Logger
}

func (c resultCache) key(kind string, input any) (string, bool) {
	if c.repo == nil {
		return "", false
	}
	b, err := json.Marshal(input)
	if err != nil {
		c.log.Warn("cannot build cache key", zap.String("kind", kind), zap.Error(err))
		return "", false
	}
	return fmt.Sprintf("%s:%016x", kind, xxhash.Sum64(b)), true
}

func (c resultCache) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("cannot encode cached result", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.repo.Set(ctx, key, string(b), c.ttl); err != nil {
		c.log.Warn("failed to cache result", zap.String("key", key), zap.Error(err))
	}
}

// cached returns the stored result for input or computes and stores it.
func cached[T any](ctx context.Context, c resultCache, kind string, input any, compute func() (T, error)) (T, error) {
	key, ok := c.key(kind, input)
	if ok {
		if raw, hit := c.repo.Get(ctx, key); hit {
			var v T
			if err := json.Unmarshal([]byte(raw), &v); err == nil {
				c.log.Debug("cache hit", zap.String("key", key))
				return v, nil
			}
			c.log.Warn("discarding unreadable cache entry", zap.String("key", key))
		}
	}

	v, err := compute()
	if err != nil {
		return v, err
	}
	if ok {
		c.store(ctx, key, v)
	}
	return v, nil
}
