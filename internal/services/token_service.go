package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL - время жизни токена доступа.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenClaims - данные пользователя, извлеченные из проверенного токена.
type TokenClaims struct {
	UserID int64
	Email  string
}

// TokenService выпускает и проверяет токены доступа.
type TokenService interface {
	Issue(userID int64, email string) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// Структура для пользовательских данных в JWT (claims).
type jwtClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

var _ TokenService = (*jwtTokenService)(nil)

type jwtTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption настраивает jwtTokenService.
type TokenOption func(*jwtTokenService)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) TokenOption {
	return func(s *jwtTokenService) { s.now = now }
}

// NewTokenService создает сервис токенов, подписывающий HS256 секретом secret.
// Пустой секрет не запрещен здесь: Issue вернет ErrMissingSecret.
func NewTokenService(secret string, ttl time.Duration, opts ...TokenOption) TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	s := &jwtTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue создает подписанный токен с {iat, exp, user_id, email}.
func (s *jwtTokenService) Issue(userID int64, email string) (string, error) {
	if len(s.secret) == 0 {
		log.Println("[TokenService] Секрет подписи JWT не настроен")
		return "", ErrMissingSecret
	}

	issuedAt := s.now()
	claims := jwtClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи JWT: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок действия токена.
func (s *jwtTokenService) Verify(tokenString string) (*TokenClaims, error) {
	if len(s.secret) == 0 {
		log.Println("[TokenService] Секрет подписи JWT не настроен")
		return nil, ErrMissingSecret
	}

	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		log.Printf("[TokenService] Токен отклонен: %v", err)
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{UserID: claims.UserID, Email: claims.Email}, nil
}

// Ошибки сервиса токенов.
var (
	ErrMissingSecret = errors.New("секрет подписи JWT не настроен")
	ErrInvalidToken  = errors.New("токен невалиден или истек")
)
