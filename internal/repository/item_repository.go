package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/Abdurrokhman02/gh-library/models"
)

// ItemRepository определяет методы для работы с товарами склада.
type ItemRepository interface {
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, id int64, item *models.Item) error
	Delete(ctx context.Context, id int64) error
}

// InventoryUserRepository определяет методы для работы с пользователями склада.
type InventoryUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.InventoryUser, error)
}

// itemColumns - поля, которые клиент может менять. Перечислены явно, чтобы
// нулевые значения (например, stok = 0) тоже записывались.
var itemColumns = []string{"kode_barang", "nama_barang", "kategori", "harga_satuan", "harga_pak", "stok"}

type gormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository создает репозиторий товаров поверх gorm.
func NewGormItemRepository(db *gorm.DB) ItemRepository {
	return &gormItemRepository{db: db}
}

// List возвращает все товары, новые первыми.
func (r *gormItemRepository) List(ctx context.Context) ([]models.Item, error) {
	items := make([]models.Item, 0)
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		log.Printf("[ItemRepo] Ошибка получения списка товаров: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение товаров: %w", err)
	}
	return items, nil
}

// Create добавляет товар и заполняет item.ID.
func (r *gormItemRepository) Create(ctx context.Context, item *models.Item) error {
	item.ID = 0
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		log.Printf("[ItemRepo] Ошибка создания товара '%s': %v", item.KodeBarang, err)
		return fmt.Errorf("ошибка выполнения запроса на создание товара: %w", err)
	}
	log.Printf("[ItemRepo] Товар '%s' создан с ID %d", item.KodeBarang, item.ID)
	return nil
}

// Update перезаписывает поля товара id.
func (r *gormItemRepository) Update(ctx context.Context, id int64, item *models.Item) error {
	item.ID = 0
	res := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", id).
		Select(itemColumns).
		Updates(item)
	if res.Error != nil {
		log.Printf("[ItemRepo] Ошибка обновления товара ID %d: %v", id, res.Error)
		return fmt.Errorf("ошибка выполнения запроса на обновление товара: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	item.ID = id
	log.Printf("[ItemRepo] Товар ID %d обновлен", id)
	return nil
}

// Delete удаляет товар id.
func (r *gormItemRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Item{}, id)
	if res.Error != nil {
		log.Printf("[ItemRepo] Ошибка удаления товара ID %d: %v", id, res.Error)
		return fmt.Errorf("ошибка выполнения запроса на удаление товара: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	log.Printf("[ItemRepo] Товар ID %d удален", id)
	return nil
}

type gormInventoryUserRepository struct {
	db *gorm.DB
}

// NewGormInventoryUserRepository создает репозиторий пользователей склада.
func NewGormInventoryUserRepository(db *gorm.DB) InventoryUserRepository {
	return &gormInventoryUserRepository{db: db}
}

// GetByEmail находит пользователя склада по email.
func (r *gormInventoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.InventoryUser, error) {
	var user models.InventoryUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("[InvUserRepo] Ошибка при поиске пользователя '%s': %v", email, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение пользователя: %w", err)
	}
	return &user, nil
}

// ErrItemNotFound - товар с таким ID отсутствует.
var ErrItemNotFound = errors.New("товар не найден")
