package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/saxenaaman628/qa-escrow-ledger/config"
)

// NewClient connects to Redis using the environment configuration and
// verifies the connection with a ping.
func NewClient(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.GetEnv("REDIS_URI", "localhost:6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}
