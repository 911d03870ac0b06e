package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Abdurrokhman02/gh-library/internal/services"
)

// Тип для ключа контекста.
type contextKey string

// Ключи для хранения данных пользователя в контексте.
const (
	UserIDKey    contextKey = "userID"
	UserEmailKey contextKey = "userEmail"
)

// Сообщения отказа. Одинаковы для всех причин невалидности токена.
const (
	MsgTokenRequired = "Требуется токен доступа"
	MsgInvalidToken  = "Токен невалиден или истек"
)

// TokenVerifier проверяет токен доступа.
type TokenVerifier interface {
	Verify(token string) (*services.TokenClaims, error)
}

// Authenticator возвращает middleware, пропускающее только запросы с валидным
// заголовком "Authorization: Bearer <token>".
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Println("[AuthMiddleware] Заголовок Authorization отсутствует")
				reject(w, MsgTokenRequired)
				return
			}

			scheme, tokenString, found := strings.Cut(authHeader, " ")
			tokenString = strings.TrimSpace(tokenString)
			if !found || !strings.EqualFold(scheme, "bearer") || tokenString == "" || strings.Contains(tokenString, " ") {
				log.Println("[AuthMiddleware] Неверный формат заголовка Authorization")
				reject(w, MsgInvalidToken)
				return
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				log.Printf("[AuthMiddleware] Токен отклонен: %v", err)
				reject(w, MsgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func reject(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	})
}

// GetUserIDFromContext извлекает UserID из контекста запроса.
// Возвращает ID пользователя и true, если ID найден, иначе 0 и false.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// WithUserID кладет ID пользователя в контекст (используется в тестах обработчиков).
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}
