package predictions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"career-predictor/internal/projection"
)

const redisKeyPrefix = "career-predictor:prediction:"

// RedisCache is a Cache shared across instances through Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to the Redis instance at url (redis://...).
func NewRedisCache(url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisCache{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (projection.Prediction, bool, error) {
	data, err := c.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return projection.Prediction{}, false, nil
	}
	if err != nil {
		return projection.Prediction{}, false, fmt.Errorf("redis get: %w", err)
	}
	p, err := decodePrediction(data)
	if err != nil {
		return projection.Prediction{}, false, err
	}
	return p, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, p projection.Prediction) error {
	data, err := encodePrediction(p)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, redisKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}
