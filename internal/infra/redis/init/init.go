package infra_redis_init

import (
	"fmt"
	"log"

	"github.com/go-redis/redis"
	"github.com/streamsync/core/internal/config"
)

// EstablishConn never fails hard: the cache is best-effort, so an
// unreachable redis degrades every lookup to a miss instead of stopping the
// service.
func EstablishConn(cfg config.RedisCache) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		log.Printf("redis unavailable, running without cache: %v", err)
	}

	return client
}
