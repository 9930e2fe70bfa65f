package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAttemptLock is a SETNX lock with TTL keyed by the payment token. It
// is the server-side guard against redeeming the same token twice.
type RedisAttemptLock struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAttemptLock(client *redis.Client, ttl time.Duration) *RedisAttemptLock {
	return &RedisAttemptLock{client: client, ttl: ttl}
}

func (l *RedisAttemptLock) Acquire(ctx context.Context, key string) (bool, error) {
	return l.client.SetNX(ctx, "checkout_lock:"+key, "1", l.ttl).Result()
}

func (l *RedisAttemptLock) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, "checkout_lock:"+key).Err()
}
