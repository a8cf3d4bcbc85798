package ratelimit

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lodgewise/lodgewise/internal/clock"
	"github.com/lodgewise/lodgewise/internal/config"
)

var Module = fx.Module("ratelimit",
	fx.Provide(New),
)

// New builds the limiter from config. Rate limiting is opt-in: without an
// enabled flag and a redis address the provider returns nil and the
// middleware passes requests through.
func New(cfg config.Config, log *zap.Logger, clk clock.Clock) (*Limiter, error) {
	rl := cfg.RateLimit
	if !rl.Enabled || rl.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rl.RedisAddr,
		Password: rl.RedisPassword,
		DB:       rl.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return NewLimiter(client, log, clk, rl.RequestsPerMinute), nil
}
