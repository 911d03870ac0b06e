package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Abdurrokhman02/gh-library/internal/middleware"
	"github.com/Abdurrokhman02/gh-library/internal/services"
	"github.com/Abdurrokhman02/gh-library/models"
)

// UserHandler обрабатывает запросы профиля текущего пользователя.
type UserHandler struct {
	profiles services.ProfileService
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(profiles services.ProfileService) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// Profile обрабатывает GET /api/user/profile.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[UserHandler:Profile] Не удалось получить userID из контекста")
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	profile, err := h.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "Пользователь не найден")
			return
		}
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respond(w, http.StatusOK, "Профиль загружен", profile)
}

// Update обрабатывает POST /api/user/update.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[UserHandler:Update] Не удалось получить userID из контекста")
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	var patch models.ProfilePatch
	if err := decodeJSON(r, &patch); err != nil {
		log.Printf("[UserHandler:Update] Ошибка декодирования запроса: %v", err)
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if err := h.profiles.UpdateProfile(r.Context(), userID, patch); err != nil {
		if respondValidation(w, err) {
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "Пользователь не найден")
			return
		}
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respond(w, http.StatusOK, "Профиль обновлен", nil)
}

// UploadAvatar обрабатывает POST /api/user/avatar. Тело запроса - само изображение.
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[UserHandler:UploadAvatar] Не удалось получить userID из контекста")
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	sizeStr := r.Header.Get("Content-Length")
	size, err := strconv.ParseInt(sizeStr, 10, 64)
	if err != nil || size <= 0 {
		log.Printf("[UserHandler:UploadAvatar] Неверный или отсутствующий Content-Length: %s", sizeStr)
		respondError(w, http.StatusBadRequest, "Неверный или отсутствующий заголовок Content-Length")
		return
	}

	body := http.MaxBytesReader(w, r.Body, services.MaxAvatarSize)
	url, err := h.profiles.UploadAvatar(r.Context(), userID, body, size, r.Header.Get("Content-Type"))
	if err != nil {
		if respondValidation(w, err) {
			return
		}
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "Пользователь не найден")
		case errors.Is(err, services.ErrStorageUnavailable):
			respondError(w, http.StatusServiceUnavailable, "Файловое хранилище недоступно")
		default:
			respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера при загрузке файла")
		}
		return
	}

	respond(w, http.StatusOK, "Аватар обновлен", map[string]string{"profile_picture_url": url})
}
