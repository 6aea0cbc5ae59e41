package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch/internal/config"
)

// NewRedisClient создает клиент Redis для очереди событий и кеша вызовов
func NewRedisClient(ctx context.Context, appCfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     appCfg.RedisAddr,
		Password: appCfg.RedisPass,
		DB:       appCfg.RedisDB,
		PoolSize: 10,
		// Сетевые таймауты берутся из дедлайна контекста
		ContextTimeoutEnabled: true,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", appCfg.RedisAddr, err)
	}

	return rdb, nil
}
