package campaign

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

// Repository is the interface for campaign repository
type Repository interface {
	Create(ctx context.Context, campaign core.Campaign) (core.Campaign, error)
	Get(ctx context.Context, id string) (core.Campaign, error)
	Update(ctx context.Context, campaign core.Campaign) (core.Campaign, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.Campaign, error)
	AttachSkillSet(ctx context.Context, id string, skillsetID string) error
	DetachSkillSet(ctx context.Context, id string, skillsetID string) error
	ListSkillSets(ctx context.Context, id string) ([]core.SkillSet, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new campaign repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates new campaign
func (r *repository) Create(ctx context.Context, campaign core.Campaign) (core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCreate")
	defer span.End()

	return campaign, r.db.WithContext(ctx).Create(&campaign).Error
}

// Get returns a campaign by ID with its skillsets
func (r *repository) Get(ctx context.Context, id string) (core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGet")
	defer span.End()

	var campaign core.Campaign
	return campaign, r.db.WithContext(ctx).Preload("SkillSets").First(&campaign, "id = ?", id).Error
}

// Update updates a campaign
func (r *repository) Update(ctx context.Context, campaign core.Campaign) (core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpdate")
	defer span.End()

	return campaign, r.db.WithContext(ctx).Save(&campaign).Error
}

// Delete deletes a campaign by ID. Refused while characters still
// belong to the campaign.
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDelete")
	defer span.End()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var characters int64
		err := tx.Model(&core.Character{}).Where("campaign_id = ?", id).Count(&characters).Error
		if err != nil {
			return err
		}
		if characters > 0 {
			return core.NewErrorConflict("campaign still has characters")
		}

		campaign := core.Campaign{ID: id}
		err = tx.Model(&campaign).Association("SkillSets").Clear()
		if err != nil {
			return err
		}

		return tx.Delete(&campaign).Error
	})
}

// List returns all campaigns
func (r *repository) List(ctx context.Context) ([]core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "RepositoryList")
	defer span.End()

	var campaigns []core.Campaign
	if err := r.db.WithContext(ctx).Find(&campaigns).Error; err != nil {
		return []core.Campaign{}, err
	}
	if campaigns == nil {
		return []core.Campaign{}, nil
	}
	return campaigns, nil
}

// AttachSkillSet adds a skillset to the campaign's pool
func (r *repository) AttachSkillSet(ctx context.Context, id string, skillsetID string) error {
	ctx, span := tracer.Start(ctx, "RepositoryAttachSkillSet")
	defer span.End()

	var campaign core.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		return err
	}

	var skillset core.SkillSet
	if err := r.db.WithContext(ctx).First(&skillset, "id = ?", skillsetID).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&campaign).Association("SkillSets").Append(&skillset)
}

// DetachSkillSet removes a skillset from the campaign's pool. The
// skillset itself is untouched.
func (r *repository) DetachSkillSet(ctx context.Context, id string, skillsetID string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDetachSkillSet")
	defer span.End()

	var campaign core.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&campaign).Association("SkillSets").Delete(&core.SkillSet{ID: skillsetID})
}

// ListSkillSets returns the skillsets attached to a campaign
func (r *repository) ListSkillSets(ctx context.Context, id string) ([]core.SkillSet, error) {
	ctx, span := tracer.Start(ctx, "RepositoryListSkillSets")
	defer span.End()

	campaign, err := r.Get(ctx, id)
	if err != nil {
		return []core.SkillSet{}, err
	}
	if campaign.SkillSets == nil {
		return []core.SkillSet{}, nil
	}
	return campaign.SkillSets, nil
}

// Count returns the campaign count
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCount")
	defer span.End()

	var count int64
	return count, r.db.WithContext(ctx).Model(&core.Campaign{}).Count(&count).Error
}
