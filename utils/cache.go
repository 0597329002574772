// File: utils/cache.go
package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"itinera/config"
	"itinera/models"
)

// CacheClient is the Redis client used for cost summary memoization.
var CacheClient *redis.Client

// SummaryCacheTTL bounds how long a memoized summary is served. Memoization
// keys on the exact request payload, so staleness only matters when catalogs
// change underneath an identical request.
const SummaryCacheTTL = 5 * time.Minute

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// SummaryCacheKey derives the memoization key for a costing request: the
// SHA-256 of the raw request payload. Identical inputs always hash to the
// same key, which is exactly the guarantee the engine's determinism gives us.
func SummaryCacheKey(payload []byte) string {
	sum := sha256.Sum256(payload)
	return "costsummary:" + hex.EncodeToString(sum[:])
}

// GetCachedSummary fetches a memoized summary; ok is false on miss or on any
// cache error (the caller just recomputes).
func GetCachedSummary(ctx context.Context, client *redis.Client, key string) (models.CostSummary, bool) {
	var summary models.CostSummary
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			GetLogger().Warn("summary cache read failed: " + err.Error())
		}
		return summary, false
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		return summary, false
	}
	return summary, true
}

// SetCachedSummary stores a computed summary; failures are logged and
// ignored, caching is purely an optimization.
func SetCachedSummary(ctx context.Context, client *redis.Client, key string, summary models.CostSummary) {
	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := client.Set(ctx, key, data, SummaryCacheTTL).Err(); err != nil {
		GetLogger().Warn("summary cache write failed: " + err.Error())
	}
}
