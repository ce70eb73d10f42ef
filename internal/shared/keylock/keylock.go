// Package keylock serialises writers on a logical key (one payroll period of
// one driver, one idempotent request) across API replicas. Each holder stores
// a random token and only that token can release the lock.
package keylock

import (
	"context"
	"net/http"
	"time"

	"go-fleetpay/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultTTL = 30 * time.Second

var ErrLocked = apperror.New(
	apperror.CodeConflict,
	"another operation on this record is in progress",
	http.StatusConflict,
)

// releaseScript deletes the lock only while it still carries the holder's
// token, so a release after TTL expiry cannot drop a newer holder's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type redisLocker struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New returns a Redis backed locker. A nil client yields an in-process no-op
// locker, used by single-instance deployments and tests.
func New(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Locker {
	if rdb == nil {
		return noopLocker{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	l := zap.L().Named("keylock")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("keylock")
	}
	return &redisLocker{rdb: rdb, ttl: ttl, logger: l}
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := key + ":lock"
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, lockKey, token, l.ttl).Result()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, "lock store unavailable", http.StatusServiceUnavailable)
	}
	if !ok {
		return nil, ErrLocked.WithDetails(map[string]string{"key": key})
	}

	return func() {
		// Released even when the caller's context is already cancelled.
		released, err := releaseScript.Run(context.WithoutCancel(ctx), l.rdb, []string{lockKey}, token).Int()
		switch {
		case err != nil:
			l.logger.Warn("release lock failed", zap.String("key", lockKey), zap.Error(err))
		case released == 0:
			l.logger.Warn("lock expired before release", zap.String("key", lockKey), zap.Duration("ttl", l.ttl))
		}
	}, nil
}

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}
