package character

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

// Repository is the interface for character repository
type Repository interface {
	Create(ctx context.Context, character core.Character) (core.Character, error)
	Get(ctx context.Context, id string) (core.Character, error)
	Update(ctx context.Context, character core.Character) (core.Character, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.Character, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]core.Character, error)
	Count(ctx context.Context) (int64, error)

	CreateTrait(ctx context.Context, trait core.Trait) (core.Trait, error)
	GetTrait(ctx context.Context, id string) (core.Trait, error)
	UpdateTrait(ctx context.Context, trait core.Trait) (core.Trait, error)
	DeleteTrait(ctx context.Context, id string) error
	ListTraits(ctx context.Context, characterID string) ([]core.Trait, error)

	CreateHitLocation(ctx context.Context, location core.HitLocation) (core.HitLocation, error)
	GetHitLocation(ctx context.Context, id string) (core.HitLocation, error)
	UpdateHitLocation(ctx context.Context, location core.HitLocation) (core.HitLocation, error)
	DeleteHitLocation(ctx context.Context, id string) error
	ListHitLocations(ctx context.Context, characterID string) ([]core.HitLocation, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new character repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates new character after checking its campaign exists
func (r *repository) Create(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCreate")
	defer span.End()

	var campaign core.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", character.CampaignID).Error; err != nil {
		return core.Character{}, errors.Wrap(err, "campaign")
	}

	return character, r.db.WithContext(ctx).Create(&character).Error
}

// Get returns a character by ID with its owned traits and hit locations
func (r *repository) Get(ctx context.Context, id string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGet")
	defer span.End()

	var character core.Character
	err := r.db.WithContext(ctx).
		Preload("Traits").
		Preload("HitLocations").
		First(&character, "id = ?", id).Error
	return character, err
}

// Update updates a character
func (r *repository) Update(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpdate")
	defer span.End()

	return character, r.db.WithContext(ctx).Omit("Traits", "HitLocations", "Skills", "Spells", "Possessions").Save(&character).Error
}

// Delete deletes a character by ID. Traits, hit locations and all
// association rows go with it, in one transaction.
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDelete")
	defer span.End()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&core.Character{}, "id = ?", id).Error; err != nil {
			return err
		}

		for _, dependent := range []interface{}{
			&core.Trait{},
			&core.HitLocation{},
			&core.CharacterSkill{},
			&core.CharacterSpell{},
			&core.Possession{},
		} {
			if err := tx.Where("character_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&core.Character{}, "id = ?", id).Error
	})
}

// List returns all characters
func (r *repository) List(ctx context.Context) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "RepositoryList")
	defer span.End()

	var characters []core.Character
	if err := r.db.WithContext(ctx).Find(&characters).Error; err != nil {
		return []core.Character{}, err
	}
	if characters == nil {
		return []core.Character{}, nil
	}
	return characters, nil
}

// ListByCampaign returns the characters belonging to a campaign
func (r *repository) ListByCampaign(ctx context.Context, campaignID string) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "RepositoryListByCampaign")
	defer span.End()

	var campaign core.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", campaignID).Error; err != nil {
		return []core.Character{}, errors.Wrap(err, "campaign")
	}

	var characters []core.Character
	if err := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Find(&characters).Error; err != nil {
		return []core.Character{}, err
	}
	if characters == nil {
		return []core.Character{}, nil
	}
	return characters, nil
}

// Count returns the character count
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCount")
	defer span.End()

	var count int64
	return count, r.db.WithContext(ctx).Model(&core.Character{}).Count(&count).Error
}

// CreateTrait creates new trait after checking its character exists
func (r *repository) CreateTrait(ctx context.Context, trait core.Trait) (core.Trait, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCreateTrait")
	defer span.End()

	if err := r.db.WithContext(ctx).First(&core.Character{}, "id = ?", trait.CharacterID).Error; err != nil {
		return core.Trait{}, errors.Wrap(err, "character")
	}

	return trait, r.db.WithContext(ctx).Create(&trait).Error
}

// GetTrait returns a trait by ID
func (r *repository) GetTrait(ctx context.Context, id string) (core.Trait, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGetTrait")
	defer span.End()

	var trait core.Trait
	return trait, r.db.WithContext(ctx).First(&trait, "id = ?", id).Error
}

// UpdateTrait updates a trait
func (r *repository) UpdateTrait(ctx context.Context, trait core.Trait) (core.Trait, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpdateTrait")
	defer span.End()

	return trait, r.db.WithContext(ctx).Save(&trait).Error
}

// DeleteTrait deletes a trait by ID
func (r *repository) DeleteTrait(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDeleteTrait")
	defer span.End()

	return r.db.WithContext(ctx).Delete(&core.Trait{}, "id = ?", id).Error
}

// ListTraits returns the traits owned by a character
func (r *repository) ListTraits(ctx context.Context, characterID string) ([]core.Trait, error) {
	ctx, span := tracer.Start(ctx, "RepositoryListTraits")
	defer span.End()

	var traits []core.Trait
	if err := r.db.WithContext(ctx).Where("character_id = ?", characterID).Find(&traits).Error; err != nil {
		return []core.Trait{}, err
	}
	if traits == nil {
		return []core.Trait{}, nil
	}
	return traits, nil
}

// CreateHitLocation creates new hit location after checking its
// character exists
func (r *repository) CreateHitLocation(ctx context.Context, location core.HitLocation) (core.HitLocation, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCreateHitLocation")
	defer span.End()

	if err := r.db.WithContext(ctx).First(&core.Character{}, "id = ?", location.CharacterID).Error; err != nil {
		return core.HitLocation{}, errors.Wrap(err, "character")
	}

	return location, r.db.WithContext(ctx).Create(&location).Error
}

// GetHitLocation returns a hit location by ID
func (r *repository) GetHitLocation(ctx context.Context, id string) (core.HitLocation, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGetHitLocation")
	defer span.End()

	var location core.HitLocation
	return location, r.db.WithContext(ctx).First(&location, "id = ?", id).Error
}

// UpdateHitLocation updates a hit location
func (r *repository) UpdateHitLocation(ctx context.Context, location core.HitLocation) (core.HitLocation, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpdateHitLocation")
	defer span.End()

	return location, r.db.WithContext(ctx).Save(&location).Error
}

// DeleteHitLocation deletes a hit location by ID
func (r *repository) DeleteHitLocation(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDeleteHitLocation")
	defer span.End()

	return r.db.WithContext(ctx).Delete(&core.HitLocation{}, "id = ?", id).Error
}

// ListHitLocations returns the hit locations owned by a character
func (r *repository) ListHitLocations(ctx context.Context, characterID string) ([]core.HitLocation, error) {
	ctx, span := tracer.Start(ctx, "RepositoryListHitLocations")
	defer span.End()

	var locations []core.HitLocation
	if err := r.db.WithContext(ctx).Where("character_id = ?", characterID).Find(&locations).Error; err != nil {
		return []core.HitLocation{}, err
	}
	if locations == nil {
		return []core.HitLocation{}, nil
	}
	return locations, nil
}
