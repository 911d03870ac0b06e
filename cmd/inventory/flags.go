package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

const (
	defaultServerPort = "3000"

	envServerPort    = "SERVER_PORT"
	envDatabaseDSN   = "DATABASE_DSN"
	envJWTSecret     = "JWT_SECRET_KEY" //nolint:gosec // Имя переменной окружения
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD" //nolint:gosec // Имя переменной окружения
)

// config хранит конфигурацию сервиса склада.
type config struct {
	Port          string
	DatabaseDSN   string
	JWTSecret     string
	RedisAddr     string // Пусто - кеш списка товаров отключен
	RedisPassword string
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
func parseFlags() (*config, error) {
	cfg := &config{}

	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт HTTP-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных склада (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "",
		fmt.Sprintf("Секрет подписи JWT (env: %s)", envJWTSecret))
	flag.StringVar(&cfg.RedisAddr, "redis-addr", "",
		fmt.Sprintf("Адрес Redis для кеша товаров, пусто - без кеша (env: %s)", envRedisAddr))

	flag.Parse()

	if cfg.Port == "" {
		cfg.Port = envOr(envServerPort, defaultServerPort)
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = envOr(envDatabaseDSN, "")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = envOr(envJWTSecret, "")
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = envOr(envRedisAddr, "")
	}
	cfg.RedisPassword = envOr(envRedisPassword, "")
	cfg.JWTSecret = strings.Trim(cfg.JWTSecret, `'"`)

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("не указан секрет подписи JWT (--jwt-secret или " + envJWTSecret + ")")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
