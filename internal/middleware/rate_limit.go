package middleware

import (
	"sync"
	"time"

	"go-fleetpay/internal/shared/apperror"
	"go-fleetpay/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key. Buckets idle for longer
// than limiterIdleTTL are dropped on the next sweep.
type KeyedRateLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	r         rate.Limit
	b         int
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		entries: make(map[string]*limiterEntry),
		r:       r,
		b:       b,
		now:     time.Now,
	}
}

func (k *KeyedRateLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) > limiterIdleTTL {
		for key, e := range k.entries {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(k.entries, key)
			}
		}
		k.lastSweep = now
	}

	e, ok := k.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (k *KeyedRateLimiter) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

// limitBy rejects a request once its key runs out of tokens. An empty key
// is not limited.
func limitBy(limiter *KeyedRateLimiter, key func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		if k != "" && !limiter.Allow(k) {
			c.Abort()
			response.ErrorFrom(c, apperror.ErrRateLimited)
			return
		}
		c.Next()
	}
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	return limitBy(NewKeyedRateLimiter(r, b), func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByActor throttles each X-Actor-ID separately. It must run after
// ContextLogger; requests without an actor are left to the per-IP limiter.
func RateLimitByActor(r rate.Limit, b int) gin.HandlerFunc {
	return limitBy(NewKeyedRateLimiter(r, b), func(c *gin.Context) string {
		return c.GetString(ActorIDKey)
	})
}
