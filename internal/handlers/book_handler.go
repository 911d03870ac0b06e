package handlers

import (
	"log"
	"net/http"

	"github.com/Abdurrokhman02/gh-library/internal/middleware"
	"github.com/Abdurrokhman02/gh-library/internal/services"
	"github.com/Abdurrokhman02/gh-library/models"
)

// BookHandler обрабатывает запросы каталога и коллекции пользователя.
type BookHandler struct {
	catalog services.CatalogService
	saved   services.SavedBookService
}

// NewBookHandler создает новый экземпляр BookHandler.
func NewBookHandler(catalog services.CatalogService, saved services.SavedBookService) *BookHandler {
	return &BookHandler{catalog: catalog, saved: saved}
}

// ListBooks обрабатывает GET /api/books?category=&sort=&search=.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[BookHandler:ListBooks] Не удалось получить userID из контекста")
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	q := r.URL.Query()
	filter := models.BookFilter{
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
		Search:   q.Get("search"),
	}

	books, err := h.catalog.ListBooks(r.Context(), userID, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respond(w, http.StatusOK, "Список книг загружен", books)
}

// ListSaved обрабатывает GET /api/my-books?search=.
func (h *BookHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[BookHandler:ListSaved] Не удалось получить userID из контекста")
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	books, err := h.catalog.ListSavedBooks(r.Context(), userID, r.URL.Query().Get("search"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respond(w, http.StatusOK, "Сохраненные книги загружены", books)
}

// ToggleSave обрабатывает POST /api/my-books.
func (h *BookHandler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[BookHandler:ToggleSave] Не удалось получить userID из контекста")
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	var desc models.BookDescriptor
	if err := decodeJSON(r, &desc); err != nil {
		log.Printf("[BookHandler:ToggleSave] Ошибка декодирования запроса: %v", err)
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	saved, err := h.saved.Toggle(r.Context(), userID, desc)
	if err != nil {
		if respondValidation(w, err) {
			return
		}
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	message := "Книга удалена из коллекции"
	if saved {
		message = "Книга сохранена в коллекцию"
	}
	writeJSON(w, http.StatusOK, models.ToggleSaveResponse{
		Status:  http.StatusOK,
		Message: message,
		IsSaved: saved,
	})
}
