package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sigo_companion/internal/gateway"
	"github.com/shenikar/sigo_companion/internal/models"
)

const identityKey = "identity:current"

// IdentityCache хранит профиль текущего пользователя в Redis
type IdentityCache struct {
	redisClient *redis.Client
}

func NewIdentityCache(redisClient *redis.Client) gateway.IdentityCache {
	return &IdentityCache{redisClient: redisClient}
}

// GetIdentity возвращает nil без ошибки при промахе
func (c *IdentityCache) GetIdentity(ctx context.Context) (*models.User, error) {
	val, err := c.redisClient.Get(ctx, identityKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity from cache: %w", err)
	}

	user := &models.User{}
	if err := json.Unmarshal(val, user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal identity from cache: %w", err)
	}
	return user, nil
}

func (c *IdentityCache) SetIdentity(ctx context.Context, user *models.User, ttl time.Duration) error {
	val, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal identity for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, identityKey, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set identity in cache: %w", err)
	}
	return nil
}

func (c *IdentityCache) InvalidateIdentity(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, identityKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate identity cache: %w", err)
	}
	return nil
}
