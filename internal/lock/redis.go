package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Locker serializes writers on a shared key. ScheduleInterview holds one
// per interviewer across its validate+write sequence so concurrent bookings
// for the same interviewer cannot interleave.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)
	Release(ctx context.Context, key string, token string) error
}

// ErrNotAcquired is returned when the key is already held.
var ErrNotAcquired = fmt.Errorf("lock not acquired")

type RedisLock struct {
	client *redis.Client
}

func NewRedisLock(addr string) (*RedisLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("lock: redis ping: %w", err)
	}

	return &RedisLock{client: client}, nil
}

// releaseScript deletes the key only when the caller still owns it, so a
// slow holder cannot release a lock re-acquired by somebody else.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
    return redis.call("del", KEYS[1])
end
return 0
`)

func (r *RedisLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, "lock:"+key, token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("lock: acquire %q: %w", key, err)
	}
	if !ok {
		return "", ErrNotAcquired
	}

	return token, nil
}

func (r *RedisLock) Release(ctx context.Context, key string, token string) error {
	if err := releaseScript.Run(ctx, r.client, []string{"lock:" + key}, token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("lock: release %q: %w", key, err)
	}
	return nil
}

func (r *RedisLock) Close() error {
	return r.client.Close()
}
