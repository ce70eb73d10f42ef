package contextutil_test

import (
	"context"
	"testing"

	"go-fleetpay/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	fallback := zap.New(core)

	t.Run("decorates fallback with the request id", func(t *testing.T) {
		ctx := contextutil.WithRequestID(context.Background(), "req-7")
		contextutil.Logger(ctx, fallback).Info("batch started")

		entry := logs.TakeAll()[0]
		assert.Equal(t, "req-7", entry.ContextMap()["request_id"])
	})

	t.Run("prefers the scoped logger", func(t *testing.T) {
		scoped := fallback.With(zap.String("actor_id", "ops"))
		ctx := contextutil.WithLogger(context.Background(), scoped)
		contextutil.Logger(ctx, zap.NewNop()).Info("confirmed")

		entry := logs.TakeAll()[0]
		assert.Equal(t, "ops", entry.ContextMap()["actor_id"])
	})

	t.Run("never nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.Logger(context.Background(), nil))
	})
}

func TestActorAndRequestID(t *testing.T) {
	ctx := contextutil.WithActorID(contextutil.WithRequestID(context.Background(), "r"), "a")

	assert.Equal(t, "r", contextutil.GetRequestID(ctx))
	assert.Equal(t, "a", contextutil.GetActorID(ctx))
	assert.Empty(t, contextutil.GetActorID(context.Background()))
}
