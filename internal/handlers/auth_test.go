package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
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

func TestNewAuthHandler(t *testing.T) {
	h := handlers.NewAuthHandler(new(MockAuthService))
	assert.NotNil(t, h)
}

// Вспомогательная функция для создания роутера с обработчиком.
func setupAuthRouter(h *handlers.AuthHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/login", h.Login)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	validReq := models.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "rahasia123"}

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockAuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Успешная регистрация",
			body: `{"name": "Budi", "email": "budi@example.com", "password": "rahasia123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, validReq).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "Регистрация прошла успешно",
		},
		{
			name:           "Невалидный JSON",
			body:           `{"name": "Budi", "email": "budi@example.com"`,
			mockSetup:      func(_ *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name: "Ошибка валидации",
			body: `{"name": "Bu", "email": "x", "password": "1"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.Anything).
					Return(&validation.Error{Fields: map[string]string{"name": "минимальная длина - 3 символов"}}).
					Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"messages":{"name":"минимальная длина - 3 символов"}`,
		},
		{
			name: "Email уже занят",
			body: `{"name": "Budi", "email": "budi@example.com", "password": "rahasia123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, validReq).
					Return(validation.FieldError("email", "email уже зарегистрирован")).
					Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "email уже зарегистрирован",
		},
		{
			name: "Внутренняя ошибка",
			body: `{"name": "Budi", "email": "budi@example.com", "password": "rahasia123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, validReq).Return(errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Не удалось выполнить регистрацию",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.mockSetup(mockService)
			router := setupAuthRouter(handlers.NewAuthHandler(mockService))

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockAuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Невалидный JSON",
			body:           `not json`,
			mockSetup:      func(_ *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name: "Неверные учетные данные",
			body: `{"email": "budi@example.com", "password": "salah"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "budi@example.com", "salah").
					Return(nil, services.ErrInvalidCredentials).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Неверный email или пароль",
		},
		{
			name: "Секрет не настроен",
			body: `{"email": "budi@example.com", "password": "rahasia123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "budi@example.com", "rahasia123").
					Return(nil, services.ErrMissingSecret).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Ошибка конфигурации сервера",
		},
		{
			name: "Внутренняя ошибка",
			body: `{"email": "budi@example.com", "password": "rahasia123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "budi@example.com", "rahasia123").
					Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.mockSetup(mockService)
			router := setupAuthRouter(handlers.NewAuthHandler(mockService))

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}

	t.Run("Успешный вход", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, "budi@example.com", "rahasia123").
			Return(&models.LoginResult{Token: "signed.jwt", UserID: 7}, nil).Once()
		router := setupAuthRouter(handlers.NewAuthHandler(mockService))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email": "budi@example.com", "password": "rahasia123"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "signed.jwt", resp.Token)
		assert.Equal(t, int64(7), resp.UserID)
		assert.Contains(t, rr.Body.String(), `"user_id":7`)
		mockService.AssertExpectations(t)
	})
}
