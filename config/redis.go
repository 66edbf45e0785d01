package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ErrNotConfigured reports that an optional backend has no connection settings.
var ErrNotConfigured = errors.New("not configured")

// InitRedis connects the profile cache. REDIS_URL may be a redis:// URL or
// a bare host:port.
func InitRedis() error {
	val := os.Getenv("REDIS_URL")
	if val == "" {
		val = os.Getenv("REDIS_ADDR")
	}
	if val == "" {
		return fmt.Errorf("REDIS_URL is not set: %w", ErrNotConfigured)
	}

	opt, err := redisOptions(val)
	if err != nil {
		return err
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("ping redis: %w", err)
	}
	RedisClient = client
	return nil
}

func redisOptions(val string) (*redis.Options, error) {
	if strings.HasPrefix(val, "redis://") || strings.HasPrefix(val, "rediss://") {
		opt, err := redis.ParseURL(val)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		return opt, nil
	}
	return &redis.Options{
		Addr:     val,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
	}, nil
}

// CloseRedis closes the client if one was opened.
func CloseRedis() error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Close()
}
