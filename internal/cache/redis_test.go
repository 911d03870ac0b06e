package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdurrokhman02/gh-library/internal/cache"
	"github.com/Abdurrokhman02/gh-library/models"
)

// fakeRedis хранит значения в памяти и реализует нужные кешу команды.
// Остальные методы redis.Cmdable не реализованы и паникуют при вызове.
type fakeRedis struct {
	redis.Cmdable
	values  map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	raw, ok := value.([]byte)
	if !ok {
		return redis.NewStatusResult("", errors.New("unexpected value type"))
	}
	f.values[key] = string(raw)
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisItemCache(t *testing.T) {
	ctx := context.Background()
	items := []models.Item{
		{ID: 2, KodeBarang: "BRG-2", NamaBarang: "Buku Tulis", HargaSatuan: 5000, Stok: 0},
		{ID: 1, KodeBarang: "BRG-1", NamaBarang: "Pulpen", HargaSatuan: 2500, Stok: 10},
	}

	t.Run("Промах пустого кеша", func(t *testing.T) {
		c := cache.NewRedisItemCache(newFakeRedis(), time.Minute)

		got, hit, err := c.GetItems(ctx)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Nil(t, got)
	})

	t.Run("Запись и чтение", func(t *testing.T) {
		fake := newFakeRedis()
		c := cache.NewRedisItemCache(fake, time.Minute)

		require.NoError(t, c.SetItems(ctx, items))
		got, hit, err := c.GetItems(ctx)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, items, got)

		for _, ttl := range fake.ttls {
			assert.Equal(t, time.Minute, ttl)
		}
	})

	t.Run("Пустой список тоже кешируется", func(t *testing.T) {
		c := cache.NewRedisItemCache(newFakeRedis(), time.Minute)

		require.NoError(t, c.SetItems(ctx, []models.Item{}))
		got, hit, err := c.GetItems(ctx)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Empty(t, got)
	})

	t.Run("Сброс", func(t *testing.T) {
		c := cache.NewRedisItemCache(newFakeRedis(), time.Minute)

		require.NoError(t, c.SetItems(ctx, items))
		require.NoError(t, c.Invalidate(ctx))
		_, hit, err := c.GetItems(ctx)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("TTL по умолчанию", func(t *testing.T) {
		fake := newFakeRedis()
		c := cache.NewRedisItemCache(fake, 0)

		require.NoError(t, c.SetItems(ctx, items))
		for _, ttl := range fake.ttls {
			assert.Equal(t, cache.DefaultItemsTTL, ttl)
		}
	})

	t.Run("Поврежденное значение", func(t *testing.T) {
		fake := newFakeRedis()
		c := cache.NewRedisItemCache(fake, time.Minute)
		require.NoError(t, c.SetItems(ctx, items))
		for k := range fake.values {
			fake.values[k] = "{not json"
		}

		got, hit, err := c.GetItems(ctx)
		require.Error(t, err)
		assert.False(t, hit)
		assert.Nil(t, got)
	})

	t.Run("Redis недоступен", func(t *testing.T) {
		fake := newFakeRedis()
		fake.failErr = errors.New("connection refused")
		c := cache.NewRedisItemCache(fake, time.Minute)

		_, hit, err := c.GetItems(ctx)
		require.Error(t, err)
		assert.False(t, hit)
		require.Error(t, c.SetItems(ctx, items))
		require.Error(t, c.Invalidate(ctx))
	})

	t.Run("Формат значения совпадает с JSON-ответом API", func(t *testing.T) {
		fake := newFakeRedis()
		c := cache.NewRedisItemCache(fake, time.Minute)
		require.NoError(t, c.SetItems(ctx, items[:1]))

		expected, err := json.Marshal(items[:1])
		require.NoError(t, err)
		for _, v := range fake.values {
			assert.JSONEq(t, string(expected), v)
		}
	})
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c cache.ItemCache = cache.Noop{}

	require.NoError(t, c.SetItems(ctx, []models.Item{{ID: 1}}))
	got, hit, err := c.GetItems(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, got)
	require.NoError(t, c.Invalidate(ctx))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	client, err := cache.NewRedisClient("127.0.0.1:1", "", 0)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "ошибка подключения к Redis")
}
