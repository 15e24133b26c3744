package cache

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisClientFromEnv builds the optional Redis client used for webhook
// and checkout idempotency replay. Returns nil when REDIS_ADDR is unset;
// callers treat a nil client as "feature off".
func NewRedisClientFromEnv() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	log.Printf("[cache][redis] configured addr=%s", addr)
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}
