package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Abdurrokhman02/gh-library/internal/repository"
	"github.com/Abdurrokhman02/gh-library/internal/storage"
	"github.com/Abdurrokhman02/gh-library/internal/validation"
	"github.com/Abdurrokhman02/gh-library/models"
)

// MaxAvatarSize - максимальный размер загружаемого аватара.
const MaxAvatarSize int64 = 5 << 20

// ProfileService - чтение и изменение профиля текущего пользователя.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (*models.UserView, error)
	UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) error
	UploadAvatar(ctx context.Context, userID int64, reader io.Reader, size int64, contentType string) (string, error)
}

var _ ProfileService = (*profileService)(nil)

type profileService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
	validator   *validation.Validator
	newKey      func() string
}

// NewProfileService создает новый экземпляр сервиса профиля.
// fileStorage может быть nil: тогда загрузка аватара возвращает ErrStorageUnavailable.
func NewProfileService(userRepo repository.UserRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
		validator:   validation.New(),
		newKey:      func() string { return uuid.NewString() },
	}
}

// GetProfile возвращает профиль без хеша пароля.
func (s *profileService) GetProfile(ctx context.Context, userID int64) (*models.UserView, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("[ProfileService] Ошибка получения профиля пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении профиля")
	}
	return user.View(), nil
}

// UpdateProfile меняет имя и/или адрес аватара.
func (s *profileService) UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) error {
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if err := s.validator.Validate(patch); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return validation.FieldError("name", "нет полей для обновления")
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, patch); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Printf("[ProfileService] Ошибка обновления профиля пользователя %d: %v", userID, err)
		return errors.New("внутренняя ошибка сервера при обновлении профиля")
	}

	log.Printf("[ProfileService] Профиль пользователя %d обновлен", userID)
	return nil
}

// UploadAvatar сохраняет изображение в объектном хранилище и записывает его адрес в профиль.
func (s *profileService) UploadAvatar(
	ctx context.Context,
	userID int64,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	if s.fileStorage == nil {
		return "", ErrStorageUnavailable
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", validation.FieldError("content_type", "допустимы только изображения")
	}
	if size <= 0 || size > MaxAvatarSize {
		return "", validation.FieldError("size", fmt.Sprintf("размер должен быть от 1 до %d байт", MaxAvatarSize))
	}

	objectKey := fmt.Sprintf("avatars/%d/%s", userID, s.newKey())
	if err := s.fileStorage.UploadFile(ctx, objectKey, reader, size, contentType); err != nil {
		log.Printf("[ProfileService] Ошибка загрузки аватара пользователя %d: %v", userID, err)
		return "", errors.New("внутренняя ошибка сервера при загрузке файла")
	}

	url := s.fileStorage.ObjectURL(objectKey)
	if err := s.userRepo.UpdateProfile(ctx, userID, models.ProfilePatch{ProfilePictureURL: &url}); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		log.Printf("[ProfileService] Ошибка сохранения адреса аватара пользователя %d: %v", userID, err)
		return "", errors.New("внутренняя ошибка сервера при обновлении профиля")
	}

	log.Printf("[ProfileService] Аватар пользователя %d сохранен как '%s'", userID, objectKey)
	return url, nil
}

// Ошибки сервиса профиля.
var (
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrStorageUnavailable = errors.New("файловое хранилище недоступно")
)
