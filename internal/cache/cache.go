package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/musistash/mfs/internal/config"
	"github.com/redis/go-redis/v9"
)

// Init 初始化本地缓存用的Redis客户端
func Init(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
