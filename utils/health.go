package utils

import (
	"context"
	"sync"
	"time"

	"medcrm/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest snapshot of the service's external dependencies.
type HealthStatus struct {
	Mongo      bool      `json:"mongo"`
	CacheRedis bool      `json:"cache_redis"`
	AuthRedis  bool      `json:"auth_redis"`
	CheckedAt  time.Time `json:"checked_at"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// checkHealth pings each dependency once. A client that was never configured
// reports unhealthy instead of panicking.
func checkHealth(ctx context.Context, mongoClient *mongo.Client, cacheRedis, authRedis *redis.Client) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	if cacheRedis != nil {
		status.CacheRedis = cacheRedis.Ping(ctx).Err() == nil
	}
	if authRedis != nil {
		status.AuthRedis = authRedis.Ping(ctx).Err() == nil
	}
	return status
}

// StartHealthMonitor checks the dependencies immediately and then on the
// configured interval, keeping the in-memory snapshot current for /health.
func StartHealthMonitor(mongoClient *mongo.Client, cacheRedis, authRedis *redis.Client) {
	interval := time.Duration(config.AppConfig.HealthCheckIntervalSecs) * time.Second
	if interval <= 0 {
		interval = 60 * time.Second
	}

	go func() {
		ctx := context.Background()

		refresh := func() {
			status := checkHealth(ctx, mongoClient, cacheRedis, authRedis)
			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}

		refresh()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			refresh()
		}
	}()
}
