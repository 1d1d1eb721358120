package coordination

import (
	"context"
	"sync"
	"time"

	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultSweepLockKey = "property_manager:locks:reconcile"

// releaseScript deletes the key only while it still holds our token, so an
// expired holder cannot free a lock that another instance took over.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSweepLock is a single-key lease shared by every API instance.
type RedisSweepLock struct {
	client *redis.Client
	key    string
}

var _ interfaces.ISweepLock = (*RedisSweepLock)(nil)

func NewRedisSweepLock(client *redis.Client, key string) *RedisSweepLock {
	if key == "" {
		key = DefaultSweepLockKey
	}
	return &RedisSweepLock{client: client, key: key}
}

func (l *RedisSweepLock) TryLock(ctx context.Context, ttl time.Duration) (func(), bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key, token, ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// the sweep context may already be cancelled
			rctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := releaseScript.Run(rctx, l.client, []string{l.key}, token).Err(); err != nil {
				logging.FromContext(ctx).WithError(err).Warn("[payment][reconcile] failed releasing sweep lock")
			}
		})
	}
	return release, true, nil
}

// LocalSweepLock serialises sweeps inside one process when Redis is off.
type LocalSweepLock struct {
	mu sync.Mutex
}

var _ interfaces.ISweepLock = (*LocalSweepLock)(nil)

func NewLocalSweepLock() *LocalSweepLock { return &LocalSweepLock{} }

// TryLock ignores ttl; the lock is held until release.
func (l *LocalSweepLock) TryLock(_ context.Context, _ time.Duration) (func(), bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}
	var once sync.Once
	return func() { once.Do(l.mu.Unlock) }, true, nil
}
