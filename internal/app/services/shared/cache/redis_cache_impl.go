package cache

import (
	"context"
	"guidingpath-service/internal/app/contracts"
	"time"
)

type redisCache struct {
	RedisRepository contracts.RedisRepository
}

func NewRedisCache(redisRepository contracts.RedisRepository) contracts.Cache {
	return &redisCache{RedisRepository: redisRepository}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	return c.RedisRepository.Get(ctx, key)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.RedisRepository.Set(ctx, key, value, ttl)
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.RedisRepository.Delete(ctx, key)
}
