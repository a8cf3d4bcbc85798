// Package ratelimit guards the public quote endpoint with a fixed-window
// redis counter keyed by client. Disabled deployments get a nil limiter
// and the middleware becomes a no-op.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lodgewise/lodgewise/internal/clock"
)

const window = time.Minute

type Limiter struct {
	client *redis.Client
	log    *zap.Logger
	clock  clock.Clock
	limit  int
}

func NewLimiter(client *redis.Client, log *zap.Logger, clk clock.Clock, requestsPerMinute int) *Limiter {
	return &Limiter{
		client: client,
		log:    log.Named("ratelimit"),
		clock:  clk,
		limit:  requestsPerMinute,
	}
}

// Allow increments the caller's window counter and reports whether the
// request fits under the limit. Redis being down fails open: quoting keeps
// working without protection rather than going dark.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	windowKey := fmt.Sprintf("ratelimit:%s:%d", key, l.clock.Now(ctx).Unix()/int64(window.Seconds()))

	count, err := l.client.Incr(ctx, windowKey).Result()
	if err != nil {
		l.log.Warn("rate limit check failed, allowing request", zap.Error(err))
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, windowKey, window)
	}
	return count <= int64(l.limit)
}

// Middleware applies the limiter per client IP. A nil limiter passes
// everything through.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		if !l.Allow(c.Request.Context(), c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited"})
			return
		}
		c.Next()
	}
}
