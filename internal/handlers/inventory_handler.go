package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Abdurrokhman02/gh-library/internal/services"
	"github.com/Abdurrokhman02/gh-library/internal/validation"
	"github.com/Abdurrokhman02/gh-library/models"
)

// InventoryHandler обрабатывает запросы сервиса склада.
// Ошибки отдаются в виде {"message": "..."}.
type InventoryHandler struct {
	service services.InventoryService
}

// NewInventoryHandler создает новый экземпляр InventoryHandler.
func NewInventoryHandler(s services.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func inventoryError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// Login обрабатывает POST /api/auth/login.
func (h *InventoryHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		inventoryError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			inventoryError(w, http.StatusUnauthorized, "Неверный email или пароль")
			return
		}
		inventoryError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// List обрабатывает GET /api/barang.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		inventoryError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create обрабатывает POST /api/barang.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.Item
	if err := decodeJSON(r, &item); err != nil {
		inventoryError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if err := h.service.CreateItem(r.Context(), &item); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update обрабатывает PUT /api/barang/{id}.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var item models.Item
	if err := decodeJSON(r, &item); err != nil {
		inventoryError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if err := h.service.UpdateItem(r.Context(), id, &item); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete обрабатывает DELETE /api/barang/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Товар удален"})
}

func (h *InventoryHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case validation.IsValidationError(err):
		inventoryError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrItemNotFound):
		inventoryError(w, http.StatusNotFound, "Товар не найден")
	default:
		log.Printf("[InventoryHandler] Ошибка сервиса: %v", err)
		inventoryError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
}

// itemID разбирает {id} из пути. При ошибке сам отвечает 400.
func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		inventoryError(w, http.StatusBadRequest, "Неверный ID товара")
		return 0, false
	}
	return id, true
}
