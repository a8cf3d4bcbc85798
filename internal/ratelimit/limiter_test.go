package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type adjustableClock struct{ now time.Time }

func (c *adjustableClock) Now(context.Context) time.Time { return c.now }

func newTestLimiter(t *testing.T, limit int) (*Limiter, *miniredis.Miniredis, *adjustableClock) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	clk := &adjustableClock{now: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}
	return NewLimiter(client, zap.NewNop(), clk, limit), mr, clk
}

func TestAllow_UnderLimit(t *testing.T) {
	l, _, _ := newTestLimiter(t, 3)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "10.0.0.1"))
	assert.True(t, l.Allow(ctx, "10.0.0.1"))
	assert.True(t, l.Allow(ctx, "10.0.0.1"))
	assert.False(t, l.Allow(ctx, "10.0.0.1"))
}

func TestAllow_PerClientWindows(t *testing.T) {
	l, _, _ := newTestLimiter(t, 1)
	ctx := context.Background()

	require.True(t, l.Allow(ctx, "10.0.0.1"))
	assert.False(t, l.Allow(ctx, "10.0.0.1"))

	// A different client has its own counter.
	assert.True(t, l.Allow(ctx, "10.0.0.2"))
}

func TestAllow_WindowRollover(t *testing.T) {
	l, _, clk := newTestLimiter(t, 1)
	ctx := context.Background()

	require.True(t, l.Allow(ctx, "10.0.0.1"))
	require.False(t, l.Allow(ctx, "10.0.0.1"))

	// The next minute window starts a fresh counter.
	clk.now = clk.now.Add(window)
	assert.True(t, l.Allow(ctx, "10.0.0.1"))
}

func TestAllow_FailsOpenWhenRedisDown(t *testing.T) {
	l, mr, _ := newTestLimiter(t, 1)
	ctx := context.Background()

	require.True(t, l.Allow(ctx, "10.0.0.1"))
	mr.Close()

	assert.True(t, l.Allow(ctx, "10.0.0.1"))
	assert.True(t, l.Allow(ctx, "10.0.0.1"))
}
