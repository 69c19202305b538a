// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"marketly/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCacheClient is the dedicated client for token revocation.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for the auth DB. A failed ping is
// logged and the client is kept; callers treat Redis errors as cache misses.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := AuthCacheClient.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis (auth cache) not reachable; token revocation disabled until it recovers", zap.Error(err))
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// RevocationStore records logged-out tokens by hash.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}

// RedisRevocationStore keeps revoked token hashes as expiring Redis keys.
type RedisRevocationStore struct {
	client redis.Cmdable
}

func NewRedisRevocationStore(client redis.Cmdable) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func revokedKey(tokenHash string) string {
	return RevokedTokenPrefix + tokenHash
}

// Revoke marks tokenHash revoked for ttl. Non-positive ttls are no-ops since
// the token has already expired.
func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKey(tokenHash), 1, ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(tokenHash)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
