package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "debt-planner:"

type RedisCache struct {
	client *redis.Client
	log    *zap.Logger
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisCache(opts RedisOptions, log *zap.Logger) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &RedisCache{
		client: rdb,
		log:    log,
	}
}

// Connect pings Redis until it answers or maxTries is exhausted.
func (r *RedisCache) Connect(ctx context.Context, maxTries int) error {
	if maxTries < 1 {
		maxTries = 1
	}

	notify := func(err error, d time.Duration) {
		r.log.Warn("redis not ready, retrying", zap.Error(err), zap.Duration("backoff", d))
	}
	operation := func() (string, error) {
		return r.client.Ping(ctx).Result()
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxInterval = 2 * time.Second

	if _, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(maxTries)),
		backoff.WithNotify(notify)); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	return nil
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
