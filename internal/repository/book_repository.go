package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Abdurrokhman02/gh-library/models"
)

// BookRepository определяет методы для работы с книгами каталога.
type BookRepository interface {
	// ListWithSavedStatus возвращает книги с названием категории и признаком is_saved
	// для userID. categoryID == nil означает "все категории".
	ListWithSavedStatus(
		ctx context.Context,
		userID int64,
		categoryID *int64,
		sort string,
		search string,
	) ([]models.BookView, error)
	// ListSaved возвращает только книги, сохраненные пользователем.
	ListSaved(ctx context.Context, userID int64, search string) ([]models.BookView, error)
	// FindOrCreate ищет книгу по точному совпадению (title, author) и создает ее при отсутствии.
	FindOrCreate(ctx context.Context, book *models.Book) (int64, error)
}

// postgresBookRepository реализует BookRepository для PostgreSQL.
type postgresBookRepository struct {
	db *sqlx.DB
}

// NewPostgresBookRepository создает новый экземпляр репозитория книг.
func NewPostgresBookRepository(db *sqlx.DB) BookRepository {
	return &postgresBookRepository{db: db}
}

const bookViewColumns = `b.id, b.title, b.author, COALESCE(b.cover_url, '') AS cover_url, ` +
	`COALESCE(b.description, '') AS description, c.name AS category_name`

// likeEscaper экранирует метасимволы LIKE, чтобы поисковая строка искалась буквально.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// ListWithSavedStatus выполняет выборку для главного экрана.
func (r *postgresBookRepository) ListWithSavedStatus(
	ctx context.Context,
	userID int64,
	categoryID *int64,
	sort string,
	search string,
) ([]models.BookView, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + bookViewColumns + `, (usb.book_id IS NOT NULL) AS is_saved
	          FROM books b
	          LEFT JOIN categories c ON c.id = b.category_id
	          LEFT JOIN user_saved_books usb ON usb.book_id = b.id AND usb.user_id = $1`)
	args := []interface{}{userID}

	conds := make([]string, 0, 2)
	if categoryID != nil {
		args = append(args, *categoryID)
		conds = append(conds, fmt.Sprintf("b.category_id = $%d", len(args)))
	}
	if search != "" {
		args = append(args, likePattern(search))
		conds = append(conds, fmt.Sprintf("(b.title ILIKE $%d OR b.author ILIKE $%d)", len(args), len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	// Порядок всегда полный: при равных ключах решает id.
	if sort == models.SortTitleAsc {
		sb.WriteString(" ORDER BY b.title ASC, b.id ASC")
	} else {
		sb.WriteString(" ORDER BY b.created_at DESC, b.id DESC")
	}

	books := make([]models.BookView, 0)
	if err := r.db.SelectContext(ctx, &books, sb.String(), args...); err != nil {
		log.Printf("[BookRepo] Ошибка получения списка книг для пользователя %d: %v", userID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка книг: %w", err)
	}

	log.Printf("[BookRepo] Получено %d книг для пользователя %d", len(books), userID)
	return books, nil
}

// ListSaved возвращает коллекцию пользователя, последние сохраненные - первыми.
func (r *postgresBookRepository) ListSaved(
	ctx context.Context,
	userID int64,
	search string,
) ([]models.BookView, error) {
	query := `SELECT ` + bookViewColumns + `, TRUE AS is_saved
	          FROM user_saved_books usb
	          JOIN books b ON b.id = usb.book_id
	          LEFT JOIN categories c ON c.id = b.category_id
	          WHERE usb.user_id = $1`
	args := []interface{}{userID}
	if search != "" {
		args = append(args, likePattern(search))
		query += ` AND (b.title ILIKE $2 OR b.author ILIKE $2)`
	}
	query += ` ORDER BY usb.id DESC`

	books := make([]models.BookView, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		log.Printf("[BookRepo] Ошибка получения сохраненных книг пользователя %d: %v", userID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение сохраненных книг: %w", err)
	}

	log.Printf("[BookRepo] Получено %d сохраненных книг пользователя %d", len(books), userID)
	return books, nil
}

// FindOrCreate возвращает ID книги с данными (title, author), создавая ее при необходимости.
// Уникальность пары на уровне БД не гарантируется: при гонке двух вставок
// возможны дубликаты, поиск тогда возвращает самую раннюю.
func (r *postgresBookRepository) FindOrCreate(ctx context.Context, book *models.Book) (int64, error) {
	var bookID int64

	findQuery := `SELECT id FROM books WHERE title=$1 AND author=$2 ORDER BY id LIMIT 1`
	err := r.db.GetContext(ctx, &bookID, findQuery, book.Title, book.Author)
	if err == nil {
		log.Printf("[BookRepo] Книга '%s' (%s) уже есть в каталоге, ID %d", book.Title, book.Author, bookID)
		return bookID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("[BookRepo] Ошибка поиска книги '%s' (%s): %v", book.Title, book.Author, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на поиск книги: %w", err)
	}

	insertQuery := `INSERT INTO books (title, author, category_id, cover_url, description)
	                VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err = r.db.QueryRowxContext(ctx, insertQuery,
		book.Title, book.Author, book.CategoryID, book.CoverURL, book.Description,
	).Scan(&bookID)
	if err != nil {
		log.Printf("[BookRepo] Ошибка создания книги '%s' (%s): %v", book.Title, book.Author, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание книги: %w", err)
	}

	log.Printf("[BookRepo] Книга '%s' (%s) добавлена в каталог с ID %d", book.Title, book.Author, bookID)
	return bookID, nil
}
