package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/Abdurrokhman02/gh-library/models"
)

// CategoryRepository определяет методы для работы с категориями.
type CategoryRepository interface {
	GetByName(ctx context.Context, name string) (*models.Category, error)
}

type postgresCategoryRepository struct {
	db *sqlx.DB
}

// NewPostgresCategoryRepository создает новый экземпляр репозитория категорий.
func NewPostgresCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &postgresCategoryRepository{db: db}
}

// GetByName находит категорию по точному имени.
func (r *postgresCategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	query := `SELECT id, name FROM categories WHERE name=$1 LIMIT 1`
	var category models.Category

	err := r.db.GetContext(ctx, &category, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[CategoryRepo] Категория '%s' не найдена", name)
			return nil, ErrCategoryNotFound
		}
		log.Printf("[CategoryRepo] Ошибка при поиске категории '%s': %v", name, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение категории: %w", err)
	}

	return &category, nil
}

// ErrCategoryNotFound - категория с таким именем отсутствует.
var ErrCategoryNotFound = errors.New("категория не найдена")
