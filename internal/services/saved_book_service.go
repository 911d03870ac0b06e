package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Abdurrokhman02/gh-library/internal/repository"
	"github.com/Abdurrokhman02/gh-library/internal/validation"
	"github.com/Abdurrokhman02/gh-library/models"
)

// SavedBookService управляет коллекцией сохраненных книг.
type SavedBookService interface {
	// Toggle сохраняет книгу, если она не сохранена, и убирает ее из коллекции иначе.
	// Возвращает новое состояние.
	Toggle(ctx context.Context, userID int64, book models.BookDescriptor) (bool, error)
}

var _ SavedBookService = (*savedBookService)(nil)

type savedBookService struct {
	bookRepo  repository.BookRepository
	savedRepo repository.SavedBookRepository
}

// NewSavedBookService создает новый экземпляр сервиса коллекции.
func NewSavedBookService(bookRepo repository.BookRepository, savedRepo repository.SavedBookRepository) SavedBookService {
	return &savedBookService{bookRepo: bookRepo, savedRepo: savedRepo}
}

// Toggle находит или создает локальную книгу по (title, author) и переключает ее сохранение.
func (s *savedBookService) Toggle(ctx context.Context, userID int64, desc models.BookDescriptor) (bool, error) {
	if strings.TrimSpace(desc.Title) == "" {
		return false, validation.FieldError("title", "обязательное поле")
	}

	description := models.DefaultBookDescription
	if desc.Description != nil {
		description = *desc.Description
	}

	bookID, err := s.bookRepo.FindOrCreate(ctx, &models.Book{
		Title:       desc.Title,
		Author:      desc.Author,
		CategoryID:  models.DefaultCategoryID,
		CoverURL:    desc.CoverURL,
		Description: description,
	})
	if err != nil {
		log.Printf("[SavedBookService] Ошибка поиска/создания книги '%s': %v", desc.Title, err)
		return false, errors.New("внутренняя ошибка сервера при поиске книги")
	}

	saved, err := s.savedRepo.Toggle(ctx, userID, bookID)
	if err != nil {
		log.Printf("[SavedBookService] Ошибка переключения книги %d для пользователя %d: %v", bookID, userID, err)
		return false, errors.New("внутренняя ошибка сервера при сохранении книги")
	}

	log.Printf("[SavedBookService] Пользователь %d: книга %d сохранена=%t", userID, bookID, saved)
	return saved, nil
}
