package locker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	mu      sync.Mutex
	values  map[string]string
	ttls    map[string]time.Duration
	failGet bool
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, _ := json.Marshal(value)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = string(data)
	f.ttls[key] = exp
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return "", errors.New("redis down")
	}
	return f.values[key], nil
}

func (f *fakeRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return false, nil
	}
	f.ttls[key] = exp
	return true, nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	f.mu.Lock()
	if _, ok := f.values[key]; ok {
		f.mu.Unlock()
		return false, nil
	}
	f.mu.Unlock()
	return true, f.Set(ctx, key, value, exp)
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRedisRepository()
	svc := &lockService{redisRepo: repo, Log: zap.NewNop()}

	acquired, token, err := svc.TryLock(ctx, "leader", time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, token)

	again, _, err := svc.TryLock(ctx, "leader", time.Minute)
	assert.NoError(t, err)
	assert.False(t, again, "second holder must not acquire")

	assert.NoError(t, svc.Refresh(ctx, "leader", token, 2*time.Minute))
	assert.Equal(t, 2*time.Minute, repo.ttls["leader"])

	assert.Error(t, svc.Unlock(ctx, "leader", "someone-else"))
	assert.Error(t, svc.Refresh(ctx, "leader", "someone-else", time.Minute))

	assert.NoError(t, svc.Unlock(ctx, "leader", token))
	assert.NoError(t, svc.Unlock(ctx, "leader", token), "releasing a missing lock is a no-op")
	assert.Error(t, svc.Refresh(ctx, "leader", token, time.Minute), "cannot refresh a released lock")

	repo.failGet = true
	assert.Error(t, svc.Unlock(ctx, "leader", token))
}
