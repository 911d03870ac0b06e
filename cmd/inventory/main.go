// Команда inventory запускает сервис склада: вход и CRUD товаров (barang).
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Abdurrokhman02/gh-library/internal/cache"
	"github.com/Abdurrokhman02/gh-library/internal/handlers"
	appmiddleware "github.com/Abdurrokhman02/gh-library/internal/middleware"
	"github.com/Abdurrokhman02/gh-library/internal/repository"
	"github.com/Abdurrokhman02/gh-library/internal/services"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second
)

// Подменяются в тестах.
var (
	newGormDB      = repository.NewGormDB
	newRedisClient = cache.NewRedisClient
)

type dependencies struct {
	db               *gorm.DB
	redis            *redis.Client // nil, если кеш отключен
	tokens           services.TokenService
	inventoryHandler *handlers.InventoryHandler
}

func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервиса склада: %v", err)
		os.Exit(1)
	}
}

func run() error {
	log.Println("Запуск сервиса склада...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка конфигурации: %w", err)
	}

	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	defer deps.close()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      setupRouter(deps),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Сервис склада слушает порт %s", cfg.Port)
	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	}
	return nil
}

func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	deps.db, err = newGormDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}

	var itemCache cache.ItemCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		deps.redis, err = newRedisClient(cfg.RedisAddr, cfg.RedisPassword, 0)
		if err != nil {
			// Без кеша сервис работает, только медленнее.
			log.Printf("Redis недоступен, кеш товаров отключен: %v", err)
		} else {
			itemCache = cache.NewRedisItemCache(deps.redis, cache.DefaultItemsTTL)
		}
	} else {
		log.Println("REDIS_ADDR не задан, кеш товаров отключен")
	}

	deps.tokens = services.NewTokenService(cfg.JWTSecret, services.DefaultTokenTTL)
	inventoryService := services.NewInventoryService(
		repository.NewGormInventoryUserRepository(deps.db),
		repository.NewGormItemRepository(deps.db),
		itemCache,
		deps.tokens,
	)
	deps.inventoryHandler = handlers.NewInventoryHandler(inventoryService)

	return deps, nil
}

func (d *dependencies) close() {
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			log.Printf("Ошибка закрытия соединения с Redis: %v", err)
		}
	}
	if d.db != nil {
		if sqlDB, err := d.db.DB(); err == nil {
			if err = sqlDB.Close(); err != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", err)
			}
		}
	}
}

// setupRouter настраивает роутер сервиса склада.
// Чтение списка публичное, изменения требуют токен.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", deps.inventoryHandler.Login)
		r.Get("/barang", deps.inventoryHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Authenticator(deps.tokens))
			r.Post("/barang", deps.inventoryHandler.Create)
			r.Put("/barang/{id}", deps.inventoryHandler.Update)
			r.Delete("/barang/{id}", deps.inventoryHandler.Delete)
		})
	})
	return r
}
