package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestKeyedRateLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	k := NewKeyedRateLimiter(rate.Every(time.Minute), 1)
	k.now = func() time.Time { return now }

	assert.True(t, k.Allow("a"))
	assert.False(t, k.Allow("a"))
	assert.True(t, k.Allow("b"))
	assert.Equal(t, 2, k.size())

	now = now.Add(limiterIdleTTL + time.Second)
	assert.True(t, k.Allow("c"))
	assert.Equal(t, 1, k.size())
}
