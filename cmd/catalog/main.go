// Команда catalog запускает API каталога книг: регистрация, вход, список книг,
// коллекция пользователя и профиль.
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
	"github.com/jmoiron/sqlx"

	"github.com/Abdurrokhman02/gh-library/internal/handlers"
	appmiddleware "github.com/Abdurrokhman02/gh-library/internal/middleware"
	"github.com/Abdurrokhman02/gh-library/internal/repository"
	"github.com/Abdurrokhman02/gh-library/internal/services"
	"github.com/Abdurrokhman02/gh-library/internal/storage"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second

	// Переменные окружения для MinIO (значения по умолчанию из docker-compose).
	envMinioEndpoint     = "MINIO_ENDPOINT"
	envMinioUser         = "MINIO_USER"
	envMinioPassword     = "MINIO_PASSWORD" //nolint:gosec // Имя переменной окружения
	envMinioBucket       = "MINIO_BUCKET"
	envMinioPublicURL    = "MINIO_PUBLIC_URL"
	defaultMinioEndpoint = "localhost:9000"
	defaultMinioUser     = "minioadmin"
	defaultMinioPassword = "minioadmin"
	defaultMinioBucket   = "ghlib-avatars"
	minioUseSSL          = false
)

// Подменяются в тестах.
var (
	newPostgresDB  = repository.NewPostgresDB
	newFileStorage = func(cfg storage.MinioConfig) (storage.FileStorage, error) {
		return storage.NewMinioClient(cfg)
	}
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db          *sqlx.DB
	fileStorage storage.FileStorage
	tokens      services.TokenService
	authHandler *handlers.AuthHandler
	bookHandler *handlers.BookHandler
	userHandler *handlers.UserHandler
}

func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера каталога...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка конфигурации: %w", err)
	}

	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	defer func() {
		if closeErr := deps.db.Close(); closeErr != nil {
			log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
		}
	}()

	r := setupRouter(deps)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	if cfg.TLSEnabled() {
		log.Printf("Запуск HTTPS-сервера на порту %s (сертификат: %s)", cfg.Port, cfg.CertFile)
		err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
	} else {
		log.Printf("Запуск HTTP-сервера на порту %s", cfg.Port)
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	deps.db, err = newPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}

	minioCfg := storage.MinioConfig{
		Endpoint:        getEnv(envMinioEndpoint, defaultMinioEndpoint),
		AccessKeyID:     getEnv(envMinioUser, defaultMinioUser),
		SecretAccessKey: getEnv(envMinioPassword, defaultMinioPassword),
		UseSSL:          minioUseSSL,
		BucketName:      getEnv(envMinioBucket, defaultMinioBucket),
		PublicURL:       getEnv(envMinioPublicURL, ""),
	}
	deps.fileStorage, err = newFileStorage(minioCfg)
	if err != nil {
		if dbCloseErr := deps.db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке MinIO: %v", dbCloseErr)
		}
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	userRepo := repository.NewPostgresUserRepository(deps.db)
	bookRepo := repository.NewPostgresBookRepository(deps.db)
	categoryRepo := repository.NewPostgresCategoryRepository(deps.db)
	savedRepo := repository.NewPostgresSavedBookRepository(deps.db)

	deps.tokens = services.NewTokenService(cfg.JWTSecret, services.DefaultTokenTTL)
	authService := services.NewAuthService(userRepo, deps.tokens)
	catalogService := services.NewCatalogService(bookRepo, categoryRepo)
	savedService := services.NewSavedBookService(bookRepo, savedRepo)
	profileService := services.NewProfileService(userRepo, deps.fileStorage)

	deps.authHandler = handlers.NewAuthHandler(authService)
	deps.bookHandler = handlers.NewBookHandler(catalogService, savedService)
	deps.userHandler = handlers.NewUserHandler(profileService)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/api", func(r chi.Router) {
		// Публичные маршруты
		r.Post("/auth/register", deps.authHandler.Register)
		r.Post("/auth/login", deps.authHandler.Login)

		// Приватные маршруты: middleware подключено ко всей группе,
		// поэтому порядок регистрации обработчиков не влияет на проверку токена.
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Authenticator(deps.tokens))

			r.Get("/books", deps.bookHandler.ListBooks)
			r.Get("/my-books", deps.bookHandler.ListSaved)
			r.Post("/my-books", deps.bookHandler.ToggleSave)

			r.Get("/user/profile", deps.userHandler.Profile)
			r.Post("/user/update", deps.userHandler.Update)
			r.Post("/user/avatar", deps.userHandler.UploadAvatar)
		})
	})
	return r
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
