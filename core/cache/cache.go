package cache

import (
	"context"
	"fmt"
	"time"

	"meetbrief-api/core/config"
	"meetbrief-api/core/constants"
	"meetbrief-api/core/logger"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)

	SetOAuthState(ctx context.Context, state, provider string) error
	ConsumeOAuthState(ctx context.Context, state string) (string, error)

	SetResetToken(ctx context.Context, token, userID string) error
	ConsumeResetToken(ctx context.Context, token string) (string, error)

	// Scoped tokens hold upstream credentials that are not our session JWT
	// (e.g. the settings API issues its own). Scope names come from
	// core/credentials.
	SetScopedToken(ctx context.Context, scope, token string, ttl time.Duration) error
	GetScopedToken(ctx context.Context, scope string) (string, error)
	DeleteScopedToken(ctx context.Context, scope string) error

	Close() error
}

type redisCache struct {
	client *redis.Client
}

func NewCache(cfg *config.Config) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Cache:Init:Success", "addr", cfg.Redis.Addr)
	return &redisCache{client: client}, nil
}

func (c *redisCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = constants.AccessTokenTTL
	}
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) SetOAuthState(ctx context.Context, state, provider string) error {
	return c.client.Set(ctx, constants.RedisKeyOAuthState+state, provider, constants.OAuthStateTTL).Err()
}

// ConsumeOAuthState returns the provider the state was issued for and
// deletes it, so a state can only be redeemed once.
func (c *redisCache) ConsumeOAuthState(ctx context.Context, state string) (string, error) {
	key := constants.RedisKeyOAuthState + state
	provider, err := c.client.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("oauth state not found or already used")
	}
	return provider, err
}

func (c *redisCache) SetResetToken(ctx context.Context, token, userID string) error {
	return c.client.Set(ctx, constants.RedisKeyResetToken+token, userID, constants.ResetTokenTTL).Err()
}

func (c *redisCache) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	userID, err := c.client.GetDel(ctx, constants.RedisKeyResetToken+token).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("reset token not found or already used")
	}
	return userID, err
}

func (c *redisCache) SetScopedToken(ctx context.Context, scope, token string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyScopedToken+scope, token, ttl).Err()
}

func (c *redisCache) GetScopedToken(ctx context.Context, scope string) (string, error) {
	token, err := c.client.Get(ctx, constants.RedisKeyScopedToken+scope).Result()
	if err == redis.Nil {
		return "", nil
	}
	return token, err
}

func (c *redisCache) DeleteScopedToken(ctx context.Context, scope string) error {
	return c.client.Del(ctx, constants.RedisKeyScopedToken+scope).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
