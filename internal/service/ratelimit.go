package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cooldown helpers backed by redis SetNX. A nil client disables limiting,
// which is what local development and tests run with.

func checkAndSetCooldown(ctx context.Context, rdb *redis.Client, key, action string, limit time.Duration) (bool, error) {
	if rdb == nil || limit <= 0 {
		return true, nil
	}

	redisKey := fmt.Sprintf("cooldown:%s:%s", action, key)
	wasSet, err := rdb.SetNX(ctx, redisKey, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cooldown in redis: %w", err)
	}
	return wasSet, nil
}

func clearCooldown(ctx context.Context, rdb *redis.Client, key, action string) error {
	if rdb == nil {
		return nil
	}
	_, err := rdb.Del(ctx, fmt.Sprintf("cooldown:%s:%s", action, key)).Result()
	return err
}
