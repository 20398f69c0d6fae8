// Package cache содержит реализацию кэша рейтинга фильмов на Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/config"
	"filmorate/internal/filmorate/ports/cache"
	"filmorate/pkg/logger"
)

// popularFilmsKey - хэш с выборками рейтинга; поле - запрошенное количество.
const popularFilmsKey = "popular_films"

// Константы для логирования.
const (
	ErrorFailedToGet        = "failed to get popular films from redis"
	ErrorFailedToSet        = "failed to set popular films in redis"
	ErrorFailedToInvalidate = "failed to invalidate popular films in redis"
	ErrorFailedToClose      = "failed to close redis connection"
)

// RedisCache реализует интерфейс PopularFilmsCache на Redis.
// Все выборки живут в одном хэше, поэтому инвалидация - одна команда DEL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache создает новый экземпляр RedisCache и проверяет соединение.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (cache.PopularFilmsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddressString(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client, ttl: cfg.PopularTTL}, nil
}

// Get возвращает закэшированную выборку или пустую строку при промахе.
func (c *RedisCache) Get(ctx context.Context, count int) (string, error) {
	payload, err := c.client.HGet(ctx, popularFilmsKey, strconv.Itoa(count)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		logger.Log(ctx).Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}
	return payload, nil
}

// Set сохраняет выборку для заданного количества и продлевает время жизни хэша.
func (c *RedisCache) Set(ctx context.Context, count int, payload string) error {
	if err := c.client.HSet(ctx, popularFilmsKey, strconv.Itoa(count), payload).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}
	if err := c.client.Expire(ctx, popularFilmsKey, c.ttl).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}
	return nil
}

// Invalidate удаляет все закэшированные выборки.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, popularFilmsKey).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToInvalidate, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToInvalidate, err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
