package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	PlantListKeyPrefix = "plants:user:%d"
)

const (
	UserTTL      = 5 * time.Minute
	PlantListTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// PlantListKey is the cache key for an owner's full plant list.
func PlantListKey(ownerID uint) string {
	return fmt.Sprintf(PlantListKeyPrefix, ownerID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePlantList drops the cached plant list for an owner. Called on
// every plant mutation (create, edit, delete, watering).
func InvalidatePlantList(ctx context.Context, ownerID uint) {
	Invalidate(ctx, PlantListKey(ownerID))
}
