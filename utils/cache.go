// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"roomreserve/config"

	"github.com/go-redis/redis/v8"
)

var (
	// StoreClient is the Redis client backing the booking store.
	StoreClient *redis.Client
)

// InitStoreClient initializes the Redis client for the booking store
// (using the store DB from AppConfig).
func InitStoreClient() {
	StoreClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStoreDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := StoreClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Store): %v", err)
	}
}

// GetStoreClient returns the Redis client for the booking store.
func GetStoreClient() *redis.Client {
	if StoreClient == nil {
		InitStoreClient()
	}
	return StoreClient
}
