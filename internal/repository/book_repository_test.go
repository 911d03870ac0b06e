package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdurrokhman02/gh-library/internal/repository"
	"github.com/Abdurrokhman02/gh-library/models"
)

var bookViewRowColumns = []string{"id", "title", "author", "cover_url", "description", "category_name", "is_saved"}

func TestListWithSavedStatus(t *testing.T) {
	fiction := int64(2)

	tests := []struct {
		name       string
		categoryID *int64
		sort       string
		search     string
		query      string
		args       []driver.Value
	}{
		{
			name:  "Без фильтров, сначала новые",
			query: `LEFT JOIN user_saved_books usb ON usb.book_id = b.id AND usb.user_id = \$1 ORDER BY b.created_at DESC, b.id DESC$`,
			args:  []driver.Value{int64(7)},
		},
		{
			name:  "Сортировка по названию",
			sort:  models.SortTitleAsc,
			query: `usb.user_id = \$1 ORDER BY b.title ASC, b.id ASC$`,
			args:  []driver.Value{int64(7)},
		},
		{
			name:  "Неизвестная сортировка работает как сортировка по дате",
			sort:  "price_desc",
			query: `ORDER BY b.created_at DESC, b.id DESC$`,
			args:  []driver.Value{int64(7)},
		},
		{
			name:       "Фильтр по категории",
			categoryID: &fiction,
			query:      regexp.QuoteMeta(`WHERE b.category_id = $2 ORDER BY`),
			args:       []driver.Value{int64(7), fiction},
		},
		{
			name:   "Поиск по названию и автору",
			search: "harry",
			query:  regexp.QuoteMeta(`WHERE (b.title ILIKE $2 OR b.author ILIKE $2) ORDER BY`),
			args:   []driver.Value{int64(7), "%harry%"},
		},
		{
			name:       "Категория и поиск вместе",
			categoryID: &fiction,
			search:     "harry",
			sort:       models.SortTitleAsc,
			query: regexp.QuoteMeta(
				`WHERE b.category_id = $2 AND (b.title ILIKE $3 OR b.author ILIKE $3) ORDER BY b.title ASC, b.id ASC`),
			args: []driver.Value{int64(7), fiction, "%harry%"},
		},
		{
			name:   "Метасимволы LIKE ищутся буквально",
			search: `100%_a\b`,
			query:  regexp.QuoteMeta(`(b.title ILIKE $2 OR b.author ILIKE $2)`),
			args:   []driver.Value{int64(7), `%100\%\_a\\b%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlxDB, mock := newSqlxMock(t)
			repo := repository.NewPostgresBookRepository(sqlxDB)

			mock.ExpectQuery(tt.query).WithArgs(tt.args...).WillReturnRows(
				sqlmock.NewRows(bookViewRowColumns).
					AddRow(int64(1), "Harry Potter", "J.K. Rowling", "https://c/1.jpg", "desc", "Fiksi", true).
					AddRow(int64(2), "Laskar Pelangi", "Andrea Hirata", "", "", nil, false))

			books, err := repo.ListWithSavedStatus(context.Background(), 7, tt.categoryID, tt.sort, tt.search)
			require.NoError(t, err)
			require.Len(t, books, 2)
			assert.True(t, books[0].IsSaved)
			require.NotNil(t, books[0].CategoryName)
			assert.Equal(t, "Fiksi", *books[0].CategoryName)
			assert.False(t, books[1].IsSaved)
			assert.Nil(t, books[1].CategoryName)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("Пустой результат - пустой срез, а не nil", func(t *testing.T) {
		sqlxDB, mock := newSqlxMock(t)
		repo := repository.NewPostgresBookRepository(sqlxDB)

		mock.ExpectQuery(`FROM books b`).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(bookViewRowColumns))

		books, err := repo.ListWithSavedStatus(context.Background(), 7, nil, "", "")
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		sqlxDB, mock := newSqlxMock(t)
		repo := repository.NewPostgresBookRepository(sqlxDB)

		mock.ExpectQuery(`FROM books b`).WillReturnError(errors.New("db down"))

		books, err := repo.ListWithSavedStatus(context.Background(), 7, nil, "", "")
		require.Error(t, err)
		assert.Nil(t, books)
		assert.Contains(t, err.Error(), "ошибка выполнения запроса")
	})
}

func TestListSaved(t *testing.T) {
	t.Run("Коллекция без поиска", func(t *testing.T) {
		sqlxDB, mock := newSqlxMock(t)
		repo := repository.NewPostgresBookRepository(sqlxDB)

		mock.ExpectQuery(regexp.QuoteMeta(`TRUE AS is_saved FROM user_saved_books usb JOIN books b ON b.id = usb.book_id`) +
			`.*` + regexp.QuoteMeta(`WHERE usb.user_id = $1 ORDER BY usb.id DESC`)).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(bookViewRowColumns).
				AddRow(int64(3), "Bumi", "Tere Liye", "", "", "Fiksi", true))

		books, err := repo.ListSaved(context.Background(), 7, "")
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.True(t, books[0].IsSaved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Коллекция с поиском", func(t *testing.T) {
		sqlxDB, mock := newSqlxMock(t)
		repo := repository.NewPostgresBookRepository(sqlxDB)

		mock.ExpectQuery(regexp.QuoteMeta(
			`WHERE usb.user_id = $1 AND (b.title ILIKE $2 OR b.author ILIKE $2) ORDER BY usb.id DESC`)).
			WithArgs(int64(7), "%bumi%").
			WillReturnRows(sqlmock.NewRows(bookViewRowColumns))

		books, err := repo.ListSaved(context.Background(), 7, "bumi")
		require.NoError(t, err)
		assert.Empty(t, books)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		sqlxDB, mock := newSqlxMock(t)
		repo := repository.NewPostgresBookRepository(sqlxDB)

		mock.ExpectQuery(`FROM user_saved_books usb`).WillReturnError(errors.New("db down"))

		books, err := repo.ListSaved(context.Background(), 7, "")
		require.Error(t, err)
		assert.Nil(t, books)
	})
}

func TestFindOrCreate(t *testing.T) {
	findQuery := regexp.QuoteMeta(`SELECT id FROM books WHERE title=$1 AND author=$2 ORDER BY id LIMIT 1`)
	insertQuery := regexp.QuoteMeta(
		`INSERT INTO books (title, author, category_id, cover_url, description) VALUES ($1, $2, $3, $4, $5) RETURNING id`)

	book := &models.Book{
		Title:       "Bumi",
		Author:      "Tere Liye",
		CategoryID:  models.DefaultCategoryID,
		CoverURL:    "https://covers.openlibrary.org/b/id/1.jpg",
		Description: models.DefaultBookDescription,
	}

	t.Run("Книга уже есть", func(t *testing.T) {
		sqlxDB, mock := newSqlxMock(t)
		repo := repository.NewPostgresBookRepository(sqlxDB)

		mock.ExpectQuery(findQuery).WithArgs(book.Title, book.Author).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

		id, err := repo.FindOrCreate(context.Background(), book)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Книги нет - создается", func(t *testing.T) {
		sqlxDB, mock := newSqlxMock(t)
		repo := repository.NewPostgresBookRepository(sqlxDB)

		mock.ExpectQuery(findQuery).WithArgs(book.Title, book.Author).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(insertQuery).
			WithArgs(book.Title, book.Author, book.CategoryID, book.CoverURL, book.Description).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(43)))

		id, err := repo.FindOrCreate(context.Background(), book)
		require.NoError(t, err)
		assert.Equal(t, int64(43), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Повторный вызов возвращает тот же ID", func(t *testing.T) {
		sqlxDB, mock := newSqlxMock(t)
		repo := repository.NewPostgresBookRepository(sqlxDB)

		mock.ExpectQuery(findQuery).WithArgs(book.Title, book.Author).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(insertQuery).
			WithArgs(book.Title, book.Author, book.CategoryID, book.CoverURL, book.Description).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(43)))
		mock.ExpectQuery(findQuery).WithArgs(book.Title, book.Author).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(43)))

		first, err := repo.FindOrCreate(context.Background(), book)
		require.NoError(t, err)
		second, err := repo.FindOrCreate(context.Background(), book)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка поиска не приводит к вставке", func(t *testing.T) {
		sqlxDB, mock := newSqlxMock(t)
		repo := repository.NewPostgresBookRepository(sqlxDB)

		mock.ExpectQuery(findQuery).WithArgs(book.Title, book.Author).WillReturnError(errors.New("db down"))

		id, err := repo.FindOrCreate(context.Background(), book)
		require.Error(t, err)
		assert.Zero(t, id)
		assert.Contains(t, err.Error(), "поиск книги")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка вставки", func(t *testing.T) {
		sqlxDB, mock := newSqlxMock(t)
		repo := repository.NewPostgresBookRepository(sqlxDB)

		mock.ExpectQuery(findQuery).WithArgs(book.Title, book.Author).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(insertQuery).WillReturnError(errors.New("fk violation"))

		id, err := repo.FindOrCreate(context.Background(), book)
		require.Error(t, err)
		assert.Zero(t, id)
		assert.Contains(t, err.Error(), "создание книги")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
