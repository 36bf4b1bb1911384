// Package redislock serializes work on a key across server instances.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/incentive-ledger/internal/config"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

const (
	keyPrefix    = "incentive-ledger:lock:"
	retryBackoff = 100 * time.Millisecond
	releaseWait  = 2 * time.Second
)

// Connect opens a Redis client and checks that it answers.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Locker hands out expiring Redis locks.
type Locker struct {
	log     *slog.Logger
	client  *redislock.Client
	ttl     time.Duration
	retries int
}

// New creates a Locker. A lock is held for at most ttl; Lock keeps retrying
// for up to wait before giving up.
func New(logger *slog.Logger, rdb redislock.RedisClient, ttl, wait time.Duration) *Locker {
	return &Locker{
		log:     logger.With("adapter", "redislock"),
		client:  redislock.New(rdb),
		ttl:     ttl,
		retries: int(wait / retryBackoff),
	}
}

// Lock obtains the lock on key. It returns domain.ErrConflict when the key
// stays held by someone else.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	var strategy redislock.RetryStrategy = redislock.NoRetry()
	if l.retries > 0 {
		strategy = redislock.LimitRetry(redislock.LinearBackoff(retryBackoff), l.retries)
	}

	lock, err := l.client.Obtain(ctx, keyPrefix+key, l.ttl, &redislock.Options{RetryStrategy: strategy})
	switch {
	case errors.Is(err, redislock.ErrNotObtained):
		return nil, fmt.Errorf("%s is busy: %w", key, domain.ErrConflict)
	case err != nil:
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseWait)
		defer cancel()
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.log.WarnContext(ctx, "lock release failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}, nil
}

// Noop is used when Redis is not configured. Requests for the same key are
// not serialized; the ledger's unique transaction id still guards duplicates.
type Noop struct{}

func (Noop) Lock(context.Context, string) (func(), error) { return func() {}, nil }
