package skillset

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

// Repository is the interface for skillset repository
type Repository interface {
	Create(ctx context.Context, skillset core.SkillSet) (core.SkillSet, error)
	Get(ctx context.Context, id string) (core.SkillSet, error)
	Update(ctx context.Context, skillset core.SkillSet) (core.SkillSet, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.SkillSet, error)
	ListSkills(ctx context.Context, id string) ([]core.Skill, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new skillset repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates new skillset
func (r *repository) Create(ctx context.Context, skillset core.SkillSet) (core.SkillSet, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCreate")
	defer span.End()

	return skillset, r.db.WithContext(ctx).Create(&skillset).Error
}

// Get returns a skillset by ID
func (r *repository) Get(ctx context.Context, id string) (core.SkillSet, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGet")
	defer span.End()

	var skillset core.SkillSet
	return skillset, r.db.WithContext(ctx).First(&skillset, "id = ?", id).Error
}

// Update updates a skillset
func (r *repository) Update(ctx context.Context, skillset core.SkillSet) (core.SkillSet, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpdate")
	defer span.End()

	return skillset, r.db.WithContext(ctx).Save(&skillset).Error
}

// Delete deletes a skillset by ID. Refused while skills still belong
// to it; campaign attachments are cleared.
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDelete")
	defer span.End()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var skills int64
		err := tx.Model(&core.Skill{}).Where("skill_set_id = ?", id).Count(&skills).Error
		if err != nil {
			return err
		}
		if skills > 0 {
			return core.NewErrorConflict("skillset still has skills")
		}

		err = tx.Exec("DELETE FROM campaign_skillsets WHERE skill_set_id = ?", id).Error
		if err != nil {
			return err
		}

		return tx.Delete(&core.SkillSet{}, "id = ?", id).Error
	})
}

// List returns all skillsets
func (r *repository) List(ctx context.Context) ([]core.SkillSet, error) {
	ctx, span := tracer.Start(ctx, "RepositoryList")
	defer span.End()

	var skillsets []core.SkillSet
	if err := r.db.WithContext(ctx).Find(&skillsets).Error; err != nil {
		return []core.SkillSet{}, err
	}
	if skillsets == nil {
		return []core.SkillSet{}, nil
	}
	return skillsets, nil
}

// ListSkills returns the skills grouped under a skillset
func (r *repository) ListSkills(ctx context.Context, id string) ([]core.Skill, error) {
	ctx, span := tracer.Start(ctx, "RepositoryListSkills")
	defer span.End()

	if _, err := r.Get(ctx, id); err != nil {
		return []core.Skill{}, err
	}

	var skills []core.Skill
	if err := r.db.WithContext(ctx).Where("skill_set_id = ?", id).Find(&skills).Error; err != nil {
		return []core.Skill{}, err
	}
	if skills == nil {
		return []core.Skill{}, nil
	}
	return skills, nil
}

// Count returns the skillset count
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCount")
	defer span.End()

	var count int64
	return count, r.db.WithContext(ctx).Model(&core.SkillSet{}).Count(&count).Error
}
