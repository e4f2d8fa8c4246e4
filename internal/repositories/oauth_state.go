package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
)

// OAuthStateRepository stores one-time OAuth state values in Redis.
type OAuthStateRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewOAuthStateRepository creates a repository whose states expire after expiration.
func NewOAuthStateRepository(client *redis.Client, expiration time.Duration) *OAuthStateRepository {
	return &OAuthStateRepository{client: client, exp: expiration}
}

func oauthStateKey(state string) string {
	return fmt.Sprintf("oauth_state:%s", state)
}

// Save stores the state with the path to redirect to after login.
func (r *OAuthStateRepository) Save(ctx context.Context, state, redirect string) error {
	key := oauthStateKey(state)
	err := r.client.Set(ctx, key, redirect, r.exp).Err()

	logger.FromContext(ctx).Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)
	return err
}

// Consume deletes the state and returns its redirect. ok is false when the
// state is unknown, expired or already used.
func (r *OAuthStateRepository) Consume(ctx context.Context, state string) (redirect string, ok bool, err error) {
	key := oauthStateKey(state)
	val, err := r.client.GetDel(ctx, key).Result()

	logger.FromContext(ctx).Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}
