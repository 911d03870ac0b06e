package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

const (
	defaultServerPort = "8080"

	// Переменные окружения.
	envServerPort  = "SERVER_PORT"
	envTLSCertFile = "TLS_CERT_FILE"
	envTLSKeyFile  = "TLS_KEY_FILE"
	envDatabaseDSN = "DATABASE_DSN"
	envJWTSecret   = "JWT_SECRET_KEY" //nolint:gosec // Имя переменной окружения, а не секрет
)

// config хранит конфигурацию сервера каталога.
type config struct {
	Port        string
	CertFile    string
	KeyFile     string
	DatabaseDSN string
	JWTSecret   string
}

// TLSEnabled сообщает, что сервер нужно запускать по HTTPS.
func (c *config) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
// Флаги имеют приоритет над переменными окружения.
func parseFlags() (*config, error) {
	cfg := &config{}

	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт HTTP(S)-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.CertFile, "cert-file", "",
		fmt.Sprintf("Путь к файлу TLS-сертификата (env: %s)", envTLSCertFile))
	flag.StringVar(&cfg.KeyFile, "key-file", "",
		fmt.Sprintf("Путь к файлу TLS-ключа (env: %s)", envTLSKeyFile))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "",
		fmt.Sprintf("Секрет подписи JWT (env: %s)", envJWTSecret))

	flag.Parse()

	lookup(&cfg.Port, envServerPort, defaultServerPort)
	lookup(&cfg.CertFile, envTLSCertFile, "")
	lookup(&cfg.KeyFile, envTLSKeyFile, "")
	lookup(&cfg.DatabaseDSN, envDatabaseDSN, "")
	lookup(&cfg.JWTSecret, envJWTSecret, "")

	// В .env секрет часто записан в кавычках.
	cfg.JWTSecret = strings.Trim(cfg.JWTSecret, `'"`)

	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return nil, errors.New("сертификат и ключ TLS задаются только вместе (--cert-file и --key-file)")
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("не указан секрет подписи JWT (--jwt-secret или " + envJWTSecret + ")")
	}

	return cfg, nil
}

// lookup подставляет значение переменной окружения, если флаг не задан.
func lookup(dst *string, env, fallback string) {
	if *dst != "" {
		return
	}
	if value, ok := os.LookupEnv(env); ok {
		*dst = value
		return
	}
	*dst = fallback
}
