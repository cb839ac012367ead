package cache

import (
	"context"
	"fmt"
	"time"

	"legalconnect/core/constants"
	"legalconnect/core/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache holds short-lived, single-use values. The OAuth state nonce lives
// here: it expires on its own and is consumed atomically on first read.
type Cache interface {
	SaveOAuthState(ctx context.Context, state string, userID uuid.UUID, ttl time.Duration) error
	// ConsumeOAuthState deletes the nonce as it reads it. Returns uuid.Nil
	// with a nil error when the nonce is unknown or already used.
	ConsumeOAuthState(ctx context.Context, state string) (uuid.UUID, error)
	Close() error
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(config RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis cache initialized", "addr", config.Addr, "db", config.DB)
	return &redisCache{client: client}, nil
}

func (c *redisCache) SaveOAuthState(ctx context.Context, state string, userID uuid.UUID, ttl time.Duration) error {
	key := constants.RedisKeyOAuthState + state
	if err := c.client.Set(ctx, key, userID.String(), ttl).Err(); err != nil {
		logger.Error("Cache:SaveOAuthState:Error", "error", err)
		return err
	}
	return nil
}

func (c *redisCache) ConsumeOAuthState(ctx context.Context, state string) (uuid.UUID, error) {
	key := constants.RedisKeyOAuthState + state
	val, err := c.client.GetDel(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, nil
		}
		logger.Error("Cache:ConsumeOAuthState:Error", "error", err)
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		logger.Error("Cache:ConsumeOAuthState:Parse:Error", "error", err, "value", val)
		return uuid.Nil, nil
	}
	return userID, nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
