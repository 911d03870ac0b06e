package services

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Abdurrokhman02/gh-library/internal/cache"
	"github.com/Abdurrokhman02/gh-library/internal/repository"
	"github.com/Abdurrokhman02/gh-library/internal/validation"
	"github.com/Abdurrokhman02/gh-library/models"
)

// InventoryService - логика сервиса склада: вход и CRUD товаров.
type InventoryService interface {
	Login(ctx context.Context, email, password string) (*models.InventoryLoginResponse, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, id int64, item *models.Item) error
	DeleteItem(ctx context.Context, id int64) error
}

var _ InventoryService = (*inventoryService)(nil)

type inventoryService struct {
	users     repository.InventoryUserRepository
	items     repository.ItemRepository
	cache     cache.ItemCache
	tokens    TokenService
	validator *validation.Validator
}

// NewInventoryService создает сервис склада. itemCache может быть nil.
func NewInventoryService(
	users repository.InventoryUserRepository,
	items repository.ItemRepository,
	itemCache cache.ItemCache,
	tokens TokenService,
) InventoryService {
	if itemCache == nil {
		itemCache = cache.Noop{}
	}
	return &inventoryService{
		users:     users,
		items:     items,
		cache:     itemCache,
		tokens:    tokens,
		validator: validation.New(),
	}
}

// Login проверяет пароль по bcrypt-хешу и выпускает токен.
func (s *inventoryService) Login(ctx context.Context, email, password string) (*models.InventoryLoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
			log.Printf("[InventoryService] Попытка входа несуществующего пользователя: %s", email)
			return nil, ErrInvalidCredentials
		}
		log.Printf("[InventoryService] Ошибка репозитория при поиске '%s': %v", email, err)
		return nil, errors.New("внутренняя ошибка сервера при поиске пользователя")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("[InventoryService] Неверный пароль для пользователя: %s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Printf("[InventoryService] Ошибка генерации токена для '%s': %v", email, err)
		return nil, errors.New("внутренняя ошибка сервера при генерации токена")
	}

	return &models.InventoryLoginResponse{Token: token, User: user}, nil
}

// ListItems отдает список из кеша, при промахе читает БД и заполняет кеш.
// Сбои кеша только логируются.
func (s *inventoryService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, hit, err := s.cache.GetItems(ctx)
	if err != nil {
		log.Printf("[InventoryService] Кеш товаров недоступен: %v", err)
	}
	if hit {
		return items, nil
	}

	items, err = s.items.List(ctx)
	if err != nil {
		return nil, errors.New("внутренняя ошибка сервера при получении товаров")
	}

	if err = s.cache.SetItems(ctx, items); err != nil {
		log.Printf("[InventoryService] Не удалось записать кеш товаров: %v", err)
	}
	return items, nil
}

// CreateItem проверяет и сохраняет новый товар.
func (s *inventoryService) CreateItem(ctx context.Context, item *models.Item) error {
	if err := s.validator.Validate(item); err != nil {
		return err
	}
	if err := s.items.Create(ctx, item); err != nil {
		return errors.New("внутренняя ошибка сервера при создании товара")
	}
	s.invalidate(ctx)
	return nil
}

// UpdateItem проверяет и перезаписывает товар id.
func (s *inventoryService) UpdateItem(ctx context.Context, id int64, item *models.Item) error {
	if err := s.validator.Validate(item); err != nil {
		return err
	}
	if err := s.items.Update(ctx, id, item); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return ErrItemNotFound
		}
		return errors.New("внутренняя ошибка сервера при обновлении товара")
	}
	s.invalidate(ctx)
	return nil
}

// DeleteItem удаляет товар id.
func (s *inventoryService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return ErrItemNotFound
		}
		return errors.New("внутренняя ошибка сервера при удалении товара")
	}
	s.invalidate(ctx)
	return nil
}

func (s *inventoryService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[InventoryService] Не удалось сбросить кеш товаров: %v", err)
	}
}

// ErrItemNotFound - товар не найден.
var ErrItemNotFound = errors.New("товар не найден")
