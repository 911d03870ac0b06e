package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abdurrokhman02/gh-library/internal/handlers"
	"github.com/Abdurrokhman02/gh-library/internal/services"
	"github.com/Abdurrokhman02/gh-library/internal/validation"
	"github.com/Abdurrokhman02/gh-library/models"
)

func setupUserRouter(h *handlers.UserHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(withUser)
	r.Get("/api/user/profile", h.Profile)
	r.Post("/api/user/update", h.Update)
	r.Post("/api/user/avatar", h.UploadAvatar)
	return r
}

func TestUserHandler_Profile(t *testing.T) {
	t.Run("Профиль загружен", func(t *testing.T) {
		profiles := new(MockProfileService)
		profiles.On("GetProfile", mock.Anything, testUserID).Return(&models.UserView{
			ID:                testUserID,
			Name:              "Budi",
			Email:             "budi@example.com",
			ProfilePictureURL: services.DefaultProfilePictureURL,
		}, nil).Once()
		router := setupUserRouter(handlers.NewUserHandler(profiles))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/user/profile", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Status int              `json:"status"`
			Data   *models.UserView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Data)
		assert.Equal(t, "budi@example.com", resp.Data.Email)
		assert.NotContains(t, rr.Body.String(), "password")
		profiles.AssertExpectations(t)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		profiles := new(MockProfileService)
		profiles.On("GetProfile", mock.Anything, testUserID).Return(nil, services.ErrUserNotFound).Once()
		router := setupUserRouter(handlers.NewUserHandler(profiles))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/user/profile", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Ошибка сервиса", func(t *testing.T) {
		profiles := new(MockProfileService)
		profiles.On("GetProfile", mock.Anything, testUserID).Return(nil, errors.New("db down")).Once()
		router := setupUserRouter(handlers.NewUserHandler(profiles))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/user/profile", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUserHandler_Update(t *testing.T) {
	name := "Budi Santoso"

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockProfileService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Имя обновлено",
			body: `{"name": "Budi Santoso"}`,
			mockSetup: func(m *MockProfileService) {
				m.On("UpdateProfile", mock.Anything, testUserID, models.ProfilePatch{Name: &name}).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Профиль обновлен",
		},
		{
			name:           "Невалидный JSON",
			body:           `{`,
			mockSetup:      func(_ *MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Ошибка валидации",
			body: `{}`,
			mockSetup: func(m *MockProfileService) {
				m.On("UpdateProfile", mock.Anything, testUserID, models.ProfilePatch{}).
					Return(validation.FieldError("name", "нет полей для обновления")).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "нет полей для обновления",
		},
		{
			name: "Пользователь не найден",
			body: `{"name": "Budi Santoso"}`,
			mockSetup: func(m *MockProfileService) {
				m.On("UpdateProfile", mock.Anything, testUserID, mock.Anything).Return(services.ErrUserNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Ошибка сервиса",
			body: `{"name": "Budi Santoso"}`,
			mockSetup: func(m *MockProfileService) {
				m.On("UpdateProfile", mock.Anything, testUserID, mock.Anything).Return(errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := new(MockProfileService)
			tt.mockSetup(profiles)
			router := setupUserRouter(handlers.NewUserHandler(profiles))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/user/update", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
			profiles.AssertExpectations(t)
		})
	}
}

func TestUserHandler_UploadAvatar(t *testing.T) {
	image := []byte("\x89PNG fake image")

	newAvatarRequest := func(contentLength string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/user/avatar", bytes.NewReader(image))
		req.Header.Set("Content-Type", "image/png")
		if contentLength != "" {
			req.Header.Set("Content-Length", contentLength)
		}
		return req
	}
	size := strconv.Itoa(len(image))

	tests := []struct {
		name           string
		contentLength  string
		mockSetup      func(m *MockProfileService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:          "Аватар загружен",
			contentLength: size,
			mockSetup: func(m *MockProfileService) {
				m.On("UploadAvatar", mock.Anything, testUserID, mock.Anything, int64(len(image)), "image/png").
					Return("http://minio:9000/ghlib-avatars/avatars/7/abc", nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"profile_picture_url":"http://minio:9000/ghlib-avatars/avatars/7/abc"`,
		},
		{
			name:           "Нет Content-Length",
			contentLength:  "",
			mockSetup:      func(_ *MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Content-Length",
		},
		{
			name:           "Некорректный Content-Length",
			contentLength:  "abc",
			mockSetup:      func(_ *MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "Не изображение",
			contentLength: size,
			mockSetup: func(m *MockProfileService) {
				m.On("UploadAvatar", mock.Anything, testUserID, mock.Anything, mock.Anything, mock.Anything).
					Return("", validation.FieldError("content_type", "допустимы только изображения")).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "допустимы только изображения",
		},
		{
			name:          "Хранилище недоступно",
			contentLength: size,
			mockSetup: func(m *MockProfileService) {
				m.On("UploadAvatar", mock.Anything, testUserID, mock.Anything, mock.Anything, mock.Anything).
					Return("", services.ErrStorageUnavailable).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:          "Пользователь не найден",
			contentLength: size,
			mockSetup: func(m *MockProfileService) {
				m.On("UploadAvatar", mock.Anything, testUserID, mock.Anything, mock.Anything, mock.Anything).
					Return("", services.ErrUserNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:          "Ошибка загрузки",
			contentLength: size,
			mockSetup: func(m *MockProfileService) {
				m.On("UploadAvatar", mock.Anything, testUserID, mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("minio down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := new(MockProfileService)
			tt.mockSetup(profiles)
			router := setupUserRouter(handlers.NewUserHandler(profiles))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, newAvatarRequest(tt.contentLength))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
			profiles.AssertExpectations(t)
		})
	}
}
