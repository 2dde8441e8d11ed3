package db

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for the cart store, or nil when no
// REDIS_URL is configured. Callers fall back to the in-memory store.
func ConnectRedis(url string) *redis.Client {
	if url == "" {
		log.Println("REDIS_URL not set, carts will live in memory")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatal("invalid REDIS_URL:", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}

	log.Println("✅ Connected to Redis")
	return client
}
