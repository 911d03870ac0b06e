package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Abdurrokhman02/gh-library/internal/repository"
	"github.com/Abdurrokhman02/gh-library/models"
)

// CatalogService отдает каталог книг с признаком "сохранено" для пользователя.
type CatalogService interface {
	ListBooks(ctx context.Context, userID int64, filter models.BookFilter) ([]models.BookView, error)
	ListSavedBooks(ctx context.Context, userID int64, search string) ([]models.BookView, error)
}

var _ CatalogService = (*catalogService)(nil)

type catalogService struct {
	bookRepo     repository.BookRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService создает новый экземпляр сервиса каталога.
func NewCatalogService(bookRepo repository.BookRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{bookRepo: bookRepo, categoryRepo: categoryRepo}
}

// isAllCategories сообщает, что фильтр по категории не задан.
// "Semua" - значение, которое присылает мобильный клиент.
func isAllCategories(name string) bool {
	return name == "" || strings.EqualFold(name, "all") || strings.EqualFold(name, "Semua")
}

// ListBooks возвращает каталог с учетом категории, поиска и сортировки.
// Неизвестная категория дает пустой список, а не ошибку.
func (s *catalogService) ListBooks(
	ctx context.Context,
	userID int64,
	filter models.BookFilter,
) ([]models.BookView, error) {
	var categoryID *int64
	category := strings.TrimSpace(filter.Category)
	if !isAllCategories(category) {
		cat, err := s.categoryRepo.GetByName(ctx, category)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				log.Printf("[CatalogService] Категория '%s' не найдена, возвращаем пустой список", category)
				return []models.BookView{}, nil
			}
			log.Printf("[CatalogService] Ошибка поиска категории '%s': %v", category, err)
			return nil, errors.New("внутренняя ошибка сервера при получении категории")
		}
		categoryID = &cat.ID
	}

	books, err := s.bookRepo.ListWithSavedStatus(ctx, userID, categoryID, filter.Sort, strings.TrimSpace(filter.Search))
	if err != nil {
		log.Printf("[CatalogService] Ошибка получения каталога для пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении списка книг")
	}
	return books, nil
}

// ListSavedBooks возвращает коллекцию пользователя.
func (s *catalogService) ListSavedBooks(ctx context.Context, userID int64, search string) ([]models.BookView, error) {
	books, err := s.bookRepo.ListSaved(ctx, userID, strings.TrimSpace(search))
	if err != nil {
		log.Printf("[CatalogService] Ошибка получения коллекции пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении сохраненных книг")
	}
	return books, nil
}
