package cache

import (
	"context"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ReadThrough returns the cached value under key, or calls load and caches
// its result for ttl. The cache is best effort: read, decode and write
// failures are logged and the loader result is still returned.
func ReadThrough[T any](
	ctx context.Context,
	c contracts.Cache,
	log *zap.Logger,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := c.Get(ctx, key)
	if err != nil {
		log.Warn("cache.ReadThrough error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	} else if cached != "" {
		var value T
		err := json.Unmarshal([]byte(cached), &value)
		if err == nil {
			log.Info("cache.ReadThrough hit",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Bool(constvars.LoggingCacheHitKey, true),
			)
			return value, nil
		}
		log.Warn("cache.ReadThrough error decoding cached value",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(exceptions.ErrCacheDecodeValue(err, key)),
		)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		log.Warn("cache.ReadThrough error writing cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}

	log.Info("cache.ReadThrough miss",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCacheKey, key),
		zap.Bool(constvars.LoggingCacheHitKey, false),
		zap.Duration(constvars.LoggingCacheTTLKey, ttl),
	)
	return value, nil
}
