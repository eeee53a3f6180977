package item

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

// Repository is the interface for item repository
type Repository interface {
	Create(ctx context.Context, item core.Item) (core.Item, error)
	Get(ctx context.Context, id string) (core.Item, error)
	Update(ctx context.Context, item core.Item) (core.Item, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.Item, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new item repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates new item
func (r *repository) Create(ctx context.Context, item core.Item) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCreate")
	defer span.End()

	return item, r.db.WithContext(ctx).Create(&item).Error
}

// Get returns an item by ID
func (r *repository) Get(ctx context.Context, id string) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGet")
	defer span.End()

	var item core.Item
	return item, r.db.WithContext(ctx).First(&item, "id = ?", id).Error
}

// Update updates an item
func (r *repository) Update(ctx context.Context, item core.Item) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpdate")
	defer span.End()

	return item, r.db.WithContext(ctx).Save(&item).Error
}

// Delete deletes an item by ID together with the possession rows that
// reference it
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDelete")
	defer span.End()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("item_id = ?", id).Delete(&core.Possession{}).Error
		if err != nil {
			return err
		}
		return tx.Delete(&core.Item{}, "id = ?", id).Error
	})
}

// List returns all items
func (r *repository) List(ctx context.Context) ([]core.Item, error) {
	ctx, span := tracer.Start(ctx, "RepositoryList")
	defer span.End()

	var items []core.Item
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return []core.Item{}, err
	}
	if items == nil {
		return []core.Item{}, nil
	}
	return items, nil
}

// Count returns the item count
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCount")
	defer span.End()

	var count int64
	return count, r.db.WithContext(ctx).Model(&core.Item{}).Count(&count).Error
}
