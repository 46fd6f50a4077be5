package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"StockKeeper/internal/model"

	"gorm.io/gorm"
)

// ItemFilter — необязательные фильтры списка. nil-поле означает «не фильтровать».
type ItemFilter struct {
	SKU          *string
	NameContains *string // подстрока без учёта регистра
	Tags         *string
	Category     *string

	CreatedFrom *time.Time // включительно
	CreatedTo   *time.Time // исключительно (правая граница дня)

	MinCost *float64
	MaxCost *float64

	IsAssembly     *bool
	IsComponent    *bool
	IsPurchaseable *bool
	IsSellable     *bool
	IsBundle       *bool
}

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
// Все операции ограничены позициями владельца userID.
type ItemRepository interface {
	// Create сохраняет новую позицию и заполняет ID/метки времени.
	Create(ctx context.Context, it *model.Item) error

	// GetByID возвращает позицию пользователя или (nil, nil), если её нет.
	GetByID(ctx context.Context, userID, id int64) (*model.Item, error)

	// Save перезаписывает позицию целиком, updated выставляется автоматически.
	Save(ctx context.Context, it *model.Item) error

	// Delete удаляет позицию пользователя, возвращает число удалённых строк.
	Delete(ctx context.Context, userID, id int64) (int64, error)

	// List возвращает страницу позиций пользователя (created ASC) и общее
	// количество строк, подошедших под фильтр.
	List(ctx context.Context, userID int64, f ItemFilter, limit, offset int) ([]model.Item, int64, error)

	// ExistsByName сообщает, занято ли имя другой позицией (любого владельца).
	// excludeID исключает саму обновляемую позицию.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) GetByID(ctx context.Context, userID, id int64) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Save(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *itemRepo) Delete(ctx context.Context, userID, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&model.Item{})
	return tx.RowsAffected, tx.Error
}

func (r *itemRepo) List(ctx context.Context, userID int64, f ItemFilter, limit, offset int) ([]model.Item, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Item{}).Where("user_id = ?", userID)
	q = applyFilter(q, f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.Item
	err := q.Order("created ASC").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *itemRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Item{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func applyFilter(q *gorm.DB, f ItemFilter) *gorm.DB {
	if f.SKU != nil {
		q = q.Where("sku = ?", *f.SKU)
	}
	if f.NameContains != nil {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(*f.NameContains)+"%")
	}
	if f.Tags != nil {
		q = q.Where("tags = ?", *f.Tags)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.CreatedFrom != nil {
		q = q.Where("created >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		q = q.Where("created < ?", *f.CreatedTo)
	}
	if f.MinCost != nil {
		q = q.Where("cost >= ?", *f.MinCost)
	}
	if f.MaxCost != nil {
		q = q.Where("cost <= ?", *f.MaxCost)
	}
	if f.IsAssembly != nil {
		q = q.Where("is_assembly = ?", *f.IsAssembly)
	}
	if f.IsComponent != nil {
		q = q.Where("is_component = ?", *f.IsComponent)
	}
	if f.IsPurchaseable != nil {
		q = q.Where("is_purchaseable = ?", *f.IsPurchaseable)
	}
	if f.IsSellable != nil {
		q = q.Where("is_sellable = ?", *f.IsSellable)
	}
	if f.IsBundle != nil {
		q = q.Where("is_bundle = ?", *f.IsBundle)
	}
	return q
}
