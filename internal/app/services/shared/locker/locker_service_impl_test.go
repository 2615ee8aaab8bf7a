package locker

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"legalhub-service/internal/app/contracts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRedisRepository mirrors the JSON-string storage of the real one.
type fakeRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key], nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = fmt.Sprintf("%q", value)
	return nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.values[key]; exists {
		return false, nil
	}
	f.values[key] = fmt.Sprintf("%q", value)
	return true, nil
}

func newTestLockService(repo contracts.RedisRepository) *lockService {
	return &lockService{redisRepo: repo, Log: zap.NewNop()}
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("second TryLock on the same key fails until unlocked", func(t *testing.T) {
		service := newTestLockService(newFakeRedisRepository())

		acquired, lockValue, err := service.TryLock(ctx, "slot:a", time.Second)
		require.NoError(t, err)
		require.True(t, acquired)
		require.NotEmpty(t, lockValue)

		acquiredAgain, _, err := service.TryLock(ctx, "slot:a", time.Second)
		require.NoError(t, err)
		assert.False(t, acquiredAgain)

		require.NoError(t, service.Unlock(ctx, "slot:a", lockValue))

		acquiredAfterUnlock, _, err := service.TryLock(ctx, "slot:a", time.Second)
		require.NoError(t, err)
		assert.True(t, acquiredAfterUnlock)
	})

	t.Run("unlock with a foreign value does not release the lock", func(t *testing.T) {
		service := newTestLockService(newFakeRedisRepository())

		_, lockValue, err := service.TryLock(ctx, "slot:b", time.Second)
		require.NoError(t, err)

		err = service.Unlock(ctx, "slot:b", "someone-else")
		assert.Error(t, err)

		// Owner can still release it.
		assert.NoError(t, service.Unlock(ctx, "slot:b", lockValue))
	})

	t.Run("unlock on a missing key is a no-op", func(t *testing.T) {
		service := newTestLockService(newFakeRedisRepository())
		assert.NoError(t, service.Unlock(ctx, "slot:missing", "whatever"))
	})

	t.Run("distinct keys lock independently", func(t *testing.T) {
		service := newTestLockService(newFakeRedisRepository())

		acquiredA, _, err := service.TryLock(ctx, "slot:a", time.Second)
		require.NoError(t, err)
		acquiredB, _, err := service.TryLock(ctx, "slot:b", time.Second)
		require.NoError(t, err)
		assert.True(t, acquiredA)
		assert.True(t, acquiredB)
	})
}
