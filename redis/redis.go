package redis

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the shared client. The cache is best-effort: when the
// connection fails, Client stays nil and callers fall back to the database.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(Ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to connect to Redis at %s: %v. Caching disabled.", addr, err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}

// Set stores a value with an expiration. No-op when caching is disabled.
func Set(key string, value any, expiration time.Duration) {
	if Client == nil {
		return
	}
	if err := Client.Set(Ctx, key, value, expiration).Err(); err != nil {
		log.Printf("redis set %s: %v", key, err)
	}
}

// Get returns the cached value and whether it was present.
func Get(key string) (string, bool) {
	if Client == nil {
		return "", false
	}
	value, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Del removes keys, used when an account's active flag changes.
func Del(keys ...string) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, keys...)
}
