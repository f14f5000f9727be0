package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/redis/go-redis/v9"
)

const aiCacheKeyPrefix = "ai:response:"

type redisAICache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAICache connects to Redis and checks it with PING.
func NewRedisAICache(ctx context.Context, cfg config.Cache, log *logger.Logger) (AICache, func() error, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisAICache").Str("address", cfg.RedisAddress).Msg("redis is not reachable")
		_ = client.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrCache, err)
	}
	log.Info().Str("func", "NewRedisAICache").Msg("connected to redis successfully")

	return newRedisAICache(client, cfg.TTL), client.Close, nil
}

func newRedisAICache(client *redis.Client, ttl time.Duration) *redisAICache {
	return &redisAICache{client: client, ttl: ttl}
}

func (c *redisAICache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, aiCacheKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrCache, err)
	}

	return val, true, nil
}

func (c *redisAICache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, aiCacheKeyPrefix+key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCache, err)
	}
	return nil
}

// nopAICache is used when no Redis address is configured.
type nopAICache struct{}

func NewNopAICache() AICache {
	return nopAICache{}
}

func (nopAICache) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (nopAICache) Set(context.Context, string, string) error { return nil }
