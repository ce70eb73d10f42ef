package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-fleetpay/internal/shared/apperror"
	"go-fleetpay/internal/shared/contextutil"
	"go-fleetpay/internal/shared/keylock"
	"go-fleetpay/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyLockTTL   = 30 * time.Second
	idempotencyReplayTTL = 24 * time.Hour
)

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// bodyRecorder tees the handler's response so a 2xx can be replayed.
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func idempotencyKey(c *gin.Context, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString(ActorIDKey), key)
}

// Idempotency makes POSTs carrying an Idempotency-Key header safe to retry.
// A repeat of a completed request replays its stored response; a repeat
// while the first is still running gets 409 PROCESSING. If Redis is
// unreachable the request runs unprotected.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	locker := keylock.New(rdb, idempotencyLockTTL)
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if rdb == nil || key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := idempotencyKey(c, key)

		if raw, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached cachedResponse
			if json.Unmarshal(raw, &cached) == nil && cached.Status != 0 {
				c.Abort()
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				return
			}
		}

		release, err := locker.Acquire(ctx, cacheKey)
		if errors.Is(err, keylock.ErrLocked) {
			c.Abort()
			response.ErrorFrom(c, apperror.ErrRequestInFlight)
			return
		}
		if err != nil {
			c.Next()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		// The client may be gone; settle the keys regardless.
		settle := context.WithoutCancel(ctx)
		if status := rec.Status(); status >= 200 && status < 300 && rec.buf.Len() > 0 {
			payload, _ := json.Marshal(cachedResponse{Status: status, Body: rec.buf.Bytes()})
			if err := rdb.Set(settle, cacheKey, payload, idempotencyReplayTTL).Err(); err != nil {
				contextutil.Logger(ctx, zap.L()).Warn("store idempotent response failed", zap.Error(err))
			}
		}
		release()
	}
}
