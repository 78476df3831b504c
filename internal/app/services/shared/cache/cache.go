package cache

import (
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/pkg/constvars"
)

// NewCache picks the backend named by driver. Unknown drivers fall back to
// the in-memory cache.
func NewCache(driver string, redisRepository contracts.RedisRepository) contracts.Cache {
	switch driver {
	case constvars.CacheDriverRedis:
		if redisRepository != nil {
			return NewRedisCache(redisRepository)
		}
	}
	return NewMemoryCache(nil)
}
