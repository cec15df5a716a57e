package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Database  bool      `json:"database"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(db *gorm.DB, redisClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			dbHealthy := false
			if sqlDB, err := db.DB(); err == nil {
				dbHealthy = sqlDB.PingContext(ctx) == nil
			}

			redisHealthy := redisClient != nil && redisClient.Ping(ctx).Err() == nil

			healthMu.Lock()
			currentHealth = HealthStatus{
				Database:  dbHealthy,
				Redis:     redisHealthy,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
