package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/Abdurrokhman02/gh-library/internal/repository"
	"github.com/Abdurrokhman02/gh-library/internal/validation"
	"github.com/Abdurrokhman02/gh-library/models"
)

// DefaultProfilePictureURL - аватар, который получает новый пользователь.
const DefaultProfilePictureURL = "https://i.imgur.com/3jGZp3u.png"

// AuthService определяет интерфейс для сервиса аутентификации.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
}

var _ AuthService = (*authService)(nil)

type authService struct {
	userRepo  repository.UserRepository
	tokens    TokenService
	validator *validation.Validator
}

// NewAuthService создает новый экземпляр сервиса аутентификации.
func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		validator: validation.New(),
	}
}

// Register проверяет данные, хеширует пароль и создает пользователя.
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := s.validator.Validate(req); err != nil {
		log.Printf("[AuthService] Данные регистрации не прошли валидацию: %v", err)
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[AuthService] Ошибка хеширования пароля для '%s': %v", req.Email, err)
		return errors.New("внутренняя ошибка сервера при хешировании пароля")
	}

	user := &models.User{
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      string(hashedPassword),
		ProfilePictureURL: DefaultProfilePictureURL,
	}

	if _, err = s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			log.Printf("[AuthService] Попытка регистрации с занятым email: %s", req.Email)
			return validation.FieldError("email", "email уже зарегистрирован")
		}
		log.Printf("[AuthService] Непредвиденная ошибка репозитория при регистрации '%s': %v", req.Email, err)
		return errors.New("внутренняя ошибка сервера при создании пользователя")
	}

	log.Printf("[AuthService] Пользователь '%s' успешно зарегистрирован", req.Email)
	return nil
}

// Login проверяет email и пароль и выпускает токен.
// Для неизвестного email и неверного пароля возвращается одна и та же ошибка.
func (s *authService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Сравнение с фиктивным хешем выравнивает время ответа.
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
			log.Printf("[AuthService] Попытка входа несуществующего пользователя: %s", email)
			return nil, ErrInvalidCredentials
		}
		log.Printf("[AuthService] Ошибка репозитория при поиске '%s': %v", email, err)
		return nil, errors.New("внутренняя ошибка сервера при поиске пользователя")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("[AuthService] Неверный пароль для пользователя: %s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации JWT для '%s': %v", email, err)
		if errors.Is(err, ErrMissingSecret) {
			return nil, err
		}
		return nil, errors.New("внутренняя ошибка сервера при генерации токена")
	}

	log.Printf("[AuthService] Пользователь '%s' успешно аутентифицирован", email)
	return &models.LoginResult{Token: token, UserID: user.ID}, nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func dummyPasswordHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("gh-library-dummy-password"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// Кастомные ошибки сервиса.
var (
	ErrInvalidCredentials = errors.New("неверный email или пароль")
)
