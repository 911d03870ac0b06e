package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// SavedBookRepository определяет методы для работы с коллекцией пользователя.
type SavedBookRepository interface {
	// Toggle переключает сохранение книги и возвращает новое состояние (true - сохранена).
	Toggle(ctx context.Context, userID, bookID int64) (bool, error)
}

type postgresSavedBookRepository struct {
	db *sqlx.DB
}

// NewPostgresSavedBookRepository создает новый экземпляр репозитория коллекции.
func NewPostgresSavedBookRepository(db *sqlx.DB) SavedBookRepository {
	return &postgresSavedBookRepository{db: db}
}

// Toggle удаляет связь (user_id, book_id), а если удалять было нечего - создает ее.
// Решение принимается по числу удаленных строк, отдельной проверки существования нет.
// Таблица user_saved_books должна иметь UNIQUE (user_id, book_id): конкурентная вставка
// той же пары гасится ON CONFLICT, и книга в любом случае остается сохраненной.
func (r *postgresSavedBookRepository) Toggle(ctx context.Context, userID, bookID int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Printf("[SavedBookRepo] Ошибка начала транзакции: %v", err)
		return false, fmt.Errorf("ошибка начала транзакции: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM user_saved_books WHERE user_id=$1 AND book_id=$2`, userID, bookID)
	if err != nil {
		rollback(tx)
		log.Printf("[SavedBookRepo] Ошибка удаления книги %d из коллекции пользователя %d: %v", bookID, userID, err)
		return false, fmt.Errorf("ошибка выполнения запроса на удаление из коллекции: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		rollback(tx)
		return false, fmt.Errorf("ошибка получения количества удаленных строк: %w", err)
	}

	saved := deleted == 0
	if saved {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO user_saved_books (user_id, book_id) VALUES ($1, $2) ON CONFLICT (user_id, book_id) DO NOTHING`,
			userID, bookID)
		if err != nil {
			rollback(tx)
			log.Printf("[SavedBookRepo] Ошибка добавления книги %d в коллекцию пользователя %d: %v", bookID, userID, err)
			return false, fmt.Errorf("ошибка выполнения запроса на добавление в коллекцию: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Printf("[SavedBookRepo] Ошибка фиксации транзакции: %v", err)
		return false, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	log.Printf("[SavedBookRepo] Книга %d пользователя %d: сохранена=%t", bookID, userID, saved)
	return saved, nil
}

func rollback(tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("[Repo] Ошибка отката транзакции: %v", err)
	}
}
