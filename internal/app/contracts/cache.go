package contracts

import (
	"context"
	"time"
)

// Cache stores JSON encoded values with a wall-clock expiry. Get returns an
// empty string on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
