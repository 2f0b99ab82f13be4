package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"pricing_agent/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for the market summary cache, or nil when no
// address is configured.
func ConnectRedis(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		log.Printf("[cache][redis] REDIS_ADDR not set, market cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
