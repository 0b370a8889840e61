package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/opslink/opslink_cad/internal/config"
)

// NewRedisClient создает клиент Redis, обслуживающий кэш инцидентов,
// отметки супервизорских сессий и очередь событий диспетчеризации.
// Воркер доставки держит блокирующий BRPOP, поэтому пул берется с запасом.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: 16,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
