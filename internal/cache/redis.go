// Package cache хранит список товаров склада в Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdurrokhman02/gh-library/models"
)

// DefaultItemsTTL - время жизни закешированного списка товаров.
const DefaultItemsTTL = 5 * time.Minute

const itemsKey = "inventory:barang:list"

// ItemCache - кеш полного списка товаров.
type ItemCache interface {
	// GetItems возвращает список и true, если он есть в кеше.
	GetItems(ctx context.Context) ([]models.Item, bool, error)
	SetItems(ctx context.Context, items []models.Item) error
	Invalidate(ctx context.Context) error
}

// NewRedisClient подключается к Redis и проверяет соединение.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ошибка подключения к Redis: %w", err)
	}

	log.Printf("Redis подключен (%s)", addr)
	return client, nil
}

// RedisItemCache реализует ItemCache поверх redis.Cmdable.
type RedisItemCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisItemCache создает кеш списка товаров.
func NewRedisItemCache(client redis.Cmdable, ttl time.Duration) *RedisItemCache {
	if ttl <= 0 {
		ttl = DefaultItemsTTL
	}
	return &RedisItemCache{client: client, ttl: ttl}
}

// GetItems читает список товаров из кеша.
func (c *RedisItemCache) GetItems(ctx context.Context) ([]models.Item, bool, error) {
	raw, err := c.client.Get(ctx, itemsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("ошибка чтения кеша товаров: %w", err)
	}

	var items []models.Item
	if err = json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("ошибка разбора кеша товаров: %w", err)
	}
	return items, true, nil
}

// SetItems сохраняет список товаров с TTL.
func (c *RedisItemCache) SetItems(ctx context.Context, items []models.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("ошибка сериализации списка товаров: %w", err)
	}
	if err = c.client.Set(ctx, itemsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("ошибка записи кеша товаров: %w", err)
	}
	return nil
}

// Invalidate удаляет закешированный список.
func (c *RedisItemCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, itemsKey).Err(); err != nil {
		return fmt.Errorf("ошибка сброса кеша товаров: %w", err)
	}
	return nil
}

// Noop - кеш, который ничего не хранит. Используется, когда Redis не настроен.
type Noop struct{}

// GetItems всегда сообщает о промахе.
func (Noop) GetItems(context.Context) ([]models.Item, bool, error) { return nil, false, nil }

// SetItems ничего не делает.
func (Noop) SetItems(context.Context, []models.Item) error { return nil }

// Invalidate ничего не делает.
func (Noop) Invalidate(context.Context) error { return nil }
