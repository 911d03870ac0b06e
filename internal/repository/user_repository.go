package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Abdurrokhman02/gh-library/models"
)

// UserRepository определяет методы для работы с пользователями каталога.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, patch models.ProfilePatch) error
}

// postgresUserRepository реализует UserRepository для PostgreSQL.
type postgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository создает новый экземпляр репозитория пользователей для PostgreSQL.
func NewPostgresUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, profile_picture_url, created_at, updated_at`

// CreateUser создает нового пользователя и возвращает его ID.
// Занятый email определяется по уникальному индексу, а не предварительной проверкой.
func (r *postgresUserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	query := `INSERT INTO users (name, email, password_hash, profile_picture_url) VALUES ($1, $2, $3, $4) RETURNING id`
	var userID int64

	err := r.db.QueryRowxContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.ProfilePictureURL,
	).Scan(&userID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[UserRepo] Email '%s' уже зарегистрирован", user.Email)
			return 0, ErrEmailTaken
		}
		log.Printf("[UserRepo] Непредвиденная ошибка при создании пользователя '%s': %v", user.Email, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание пользователя: %w", err)
	}

	log.Printf("[UserRepo] Пользователь '%s' создан с ID %d", user.Email, userID)
	return userID, nil
}

// GetUserByEmail находит пользователя по email.
func (r *postgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	var user models.User

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[UserRepo] Пользователь с email '%s' не найден", email)
			return nil, ErrUserNotFound
		}
		log.Printf("[UserRepo] Ошибка при поиске пользователя '%s': %v", email, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение пользователя: %w", err)
	}

	return &user, nil
}

// GetUserByID находит пользователя по ID.
func (r *postgresUserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	var user models.User

	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[UserRepo] Пользователь с ID %d не найден", id)
			return nil, ErrUserNotFound
		}
		log.Printf("[UserRepo] Ошибка при поиске пользователя ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение пользователя: %w", err)
	}

	return &user, nil
}

// UpdateProfile меняет имя и/или аватар пользователя.
// Пустой патч ничего не делает.
func (r *postgresUserRepository) UpdateProfile(ctx context.Context, id int64, patch models.ProfilePatch) error {
	if patch.IsEmpty() {
		return nil
	}

	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)
	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name=$%d", len(args)))
	}
	if patch.ProfilePictureURL != nil {
		args = append(args, *patch.ProfilePictureURL)
		sets = append(sets, fmt.Sprintf("profile_picture_url=$%d", len(args)))
	}
	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)

	query := `UPDATE users SET ` + strings.Join(sets, ", ") + fmt.Sprintf(` WHERE id=$%d`, len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("[UserRepo] Ошибка обновления профиля пользователя ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление профиля: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества обновленных строк: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	log.Printf("[UserRepo] Профиль пользователя ID %d обновлен", id)
	return nil
}

// Кастомные ошибки репозитория.
var (
	ErrUserNotFound = errors.New("пользователь не найден")
	ErrEmailTaken   = errors.New("email уже зарегистрирован")
)
