// File: lojinha/utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"lojinha/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// TokenCache stores hashes of live auth tokens so that they can be
// validated and revoked without touching the database.
type TokenCache interface {
	SaveTokenHash(ctx context.Context, userID, hash string) error
	GetTokenHash(ctx context.Context, userID string) (string, error)
	DeleteTokenHash(ctx context.Context, userID string) error
}

// RedisTokenCache implements TokenCache on the auth cache client.
type RedisTokenCache struct {
	Client *redis.Client
}

func NewRedisTokenCache() *RedisTokenCache {
	return &RedisTokenCache{Client: GetAuthCacheClient()}
}

func (c *RedisTokenCache) SaveTokenHash(ctx context.Context, userID, hash string) error {
	return c.Client.Set(ctx, AuthCachePrefix+userID, hash, AuthCacheTTL).Err()
}

func (c *RedisTokenCache) GetTokenHash(ctx context.Context, userID string) (string, error) {
	hash, err := c.Client.Get(ctx, AuthCachePrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	// Refresh the TTL on every successful lookup.
	_ = c.Client.Expire(ctx, AuthCachePrefix+userID, AuthCacheTTL).Err()
	return hash, nil
}

func (c *RedisTokenCache) DeleteTokenHash(ctx context.Context, userID string) error {
	return c.Client.Del(ctx, AuthCachePrefix+userID).Err()
}
