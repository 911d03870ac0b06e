package models

import "time"

// DefaultCategoryID - категория, которая назначается книгам без известной категории.
const DefaultCategoryID int64 = 1

// DefaultBookDescription подставляется, если клиент не прислал описание внешней книги.
const DefaultBookDescription = "Deskripsi dari OpenLibrary"

// Category представляет категорию книг.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Book представляет книгу в локальном каталоге.
type Book struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Author      string    `db:"author" json:"author"`
	CategoryID  int64     `db:"category_id" json:"category_id"`
	CoverURL    string    `db:"cover_url" json:"cover_url"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// BookView - строка списка книг с названием категории и признаком "сохранено"
// для текущего пользователя.
type BookView struct {
	ID           int64   `db:"id" json:"id"`
	Title        string  `db:"title" json:"title"`
	Author       string  `db:"author" json:"author"`
	CoverURL     string  `db:"cover_url" json:"cover_url"`
	Description  string  `db:"description" json:"description"`
	CategoryName *string `db:"category_name" json:"category_name"` // NULL для книг без категории
	IsSaved      bool    `db:"is_saved" json:"is_saved"`
}

// BookDescriptor описывает книгу, которую клиент хочет сохранить.
// Книга может еще не существовать локально (например, пришла из OpenLibrary).
type BookDescriptor struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	CoverURL    string  `json:"cover_url"`
	Description *string `json:"description,omitempty"`
}

// SavedBook - связь пользователя и сохраненной им книги.
type SavedBook struct {
	ID     int64 `db:"id" json:"id"`
	UserID int64 `db:"user_id" json:"user_id"`
	BookID int64 `db:"book_id" json:"book_id"`
}

// BookFilter - параметры выборки каталога.
type BookFilter struct {
	Category string
	Sort     string
	Search   string
}

// SortTitleAsc - сортировка по названию по возрастанию. Любое другое значение
// означает сортировку по дате добавления (сначала новые).
const SortTitleAsc = "title_asc"

// ToggleSaveResponse - ответ на переключение сохранения книги.
type ToggleSaveResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	IsSaved bool   `json:"is_saved"`
}
