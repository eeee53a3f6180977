package spell

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

// Repository is the interface for spell repository
type Repository interface {
	Create(ctx context.Context, spell core.Spell) (core.Spell, error)
	Get(ctx context.Context, id string) (core.Spell, error)
	Update(ctx context.Context, spell core.Spell) (core.Spell, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.Spell, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new spell repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates new spell
func (r *repository) Create(ctx context.Context, spell core.Spell) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCreate")
	defer span.End()

	return spell, r.db.WithContext(ctx).Create(&spell).Error
}

// Get returns a spell by ID
func (r *repository) Get(ctx context.Context, id string) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGet")
	defer span.End()

	var spell core.Spell
	return spell, r.db.WithContext(ctx).First(&spell, "id = ?", id).Error
}

// Update updates a spell
func (r *repository) Update(ctx context.Context, spell core.Spell) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpdate")
	defer span.End()

	return spell, r.db.WithContext(ctx).Save(&spell).Error
}

// Delete deletes a spell by ID together with the character-spell rows
// that reference it
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDelete")
	defer span.End()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("spell_id = ?", id).Delete(&core.CharacterSpell{}).Error
		if err != nil {
			return err
		}
		return tx.Delete(&core.Spell{}, "id = ?", id).Error
	})
}

// List returns all spells
func (r *repository) List(ctx context.Context) ([]core.Spell, error) {
	ctx, span := tracer.Start(ctx, "RepositoryList")
	defer span.End()

	var spells []core.Spell
	if err := r.db.WithContext(ctx).Find(&spells).Error; err != nil {
		return []core.Spell{}, err
	}
	if spells == nil {
		return []core.Spell{}, nil
	}
	return spells, nil
}

// Count returns the spell count
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCount")
	defer span.End()

	var count int64
	return count, r.db.WithContext(ctx).Model(&core.Spell{}).Count(&count).Error
}
