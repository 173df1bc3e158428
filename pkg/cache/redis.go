package cache

import (
	"context"
	"time"

	"planetarium-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis for the response cache. Returns nil when
// the server is unreachable so callers can degrade to uncached responses.
func NewRedisClient(config utils.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}
