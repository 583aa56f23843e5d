// Package bootstrap establishes the runtime dependencies shared by the
// server and seeder commands.
package bootstrap

import (
	"fmt"

	"verdant/internal/cache"
	"verdant/internal/config"
	"verdant/internal/database"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitRuntime connects to the database and Redis. A missing database is
// fatal; an unreachable Redis yields a nil client and callers degrade to
// uncached operation.
func InitRuntime(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	return db, cache.GetClient(), nil
}
