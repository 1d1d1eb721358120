package database

import (
	"context"
	"fmt"

	"property_manager/internal/config"
	"property_manager/internal/infrastructure/logging"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil without error when redis.addr is empty; callers
// then fall back to in-process coordination.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		logging.Logger().Warn("[redis] REDIS_ADDR not set; sweep lock and settlement events stay in-process")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	logging.Logger().WithField("addr", cfg.Addr).Info("[redis] connected")
	return client, nil
}
