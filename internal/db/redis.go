package db

import (
	"context"
	"log"

	"course-service/internal/config"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects the package-level redis client. A failed ping is logged
// but not fatal: caching degrades to direct store reads.
func InitRedis(cfg config.RedisConfig) {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: could not connect to Redis: %s", err)
	} else {
		log.Println("Successfully connected to Redis")
	}
}
