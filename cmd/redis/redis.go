package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/inventory/cmd/config"
	"github.com/redis/go-redis/v9"
)

// New builds a Redis client from configuration and verifies connectivity.
func New(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config provided")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	return c, nil
}
