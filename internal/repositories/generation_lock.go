package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
)

// GenerationLockRepository holds a per-user in-flight generation lock in Redis.
type GenerationLockRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGenerationLockRepository creates locks that self-release after ttl.
func NewGenerationLockRepository(client *redis.Client, ttl time.Duration) *GenerationLockRepository {
	return &GenerationLockRepository{client: client, ttl: ttl}
}

func generationLockKey(userID uuid.UUID) string {
	return fmt.Sprintf("generation_lock:%s", userID)
}

// Acquire returns false when the user already holds the lock.
func (r *GenerationLockRepository) Acquire(ctx context.Context, userID uuid.UUID) (bool, error) {
	key := generationLockKey(userID)
	ok, err := r.client.SetNX(ctx, key, time.Now().Unix(), r.ttl).Result()

	logger.FromContext(ctx).Infow(
		"key", key,
		"result", ok,
		"error", err,
	)
	return ok, err
}

// Release drops the user's lock.
func (r *GenerationLockRepository) Release(ctx context.Context, userID uuid.UUID) error {
	key := generationLockKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.FromContext(ctx).Infow(
		"key", key,
		"result", "released",
		"error", err,
	)
	return err
}
