package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Abdurrokhman02/gh-library/internal/services"
	"github.com/Abdurrokhman02/gh-library/models"
)

// AuthHandler обрабатывает HTTP-запросы, связанные с аутентификацией.
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s services.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register обрабатывает POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса регистрации: %v", err)
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		if respondValidation(w, err) {
			return
		}
		log.Printf("[AuthHandler] Ошибка регистрации '%s': %v", req.Email, err)
		respondError(w, http.StatusInternalServerError, "Не удалось выполнить регистрацию")
		return
	}

	respond(w, http.StatusCreated, "Регистрация прошла успешно", nil)
}

// Login обрабатывает POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса входа: %v", err)
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "Неверный email или пароль")
		case errors.Is(err, services.ErrMissingSecret):
			respondError(w, http.StatusInternalServerError, "Ошибка конфигурации сервера")
		default:
			respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Status:  http.StatusOK,
		Message: "Вход выполнен успешно",
		Token:   result.Token,
		UserID:  result.UserID,
	})
}
