package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/workhub/workhub-api/internal/config"
)

// FromConfig connects to redis when REDIS_ADDR is set. An unreachable redis
// is logged and replaced by Noop; the store stays the source of truth.
func FromConfig(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (Cache, func()) {
	if cfg.RedisAddr == "" {
		return Noop{}, func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unavailable, business cache disabled")
		_ = rdb.Close()
		return Noop{}, func() {}
	}

	log.WithField("addr", cfg.RedisAddr).Info("business cache enabled")
	return NewRedisCache(rdb, cfg.BusinessCacheTTL), func() { _ = rdb.Close() }
}
