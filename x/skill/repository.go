package skill

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

// Repository is the interface for skill repository
type Repository interface {
	Create(ctx context.Context, skill core.Skill) (core.Skill, error)
	Get(ctx context.Context, id string) (core.Skill, error)
	Update(ctx context.Context, skill core.Skill) (core.Skill, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.Skill, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new skill repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates new skill after checking its skillset exists
func (r *repository) Create(ctx context.Context, skill core.Skill) (core.Skill, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCreate")
	defer span.End()

	var skillset core.SkillSet
	if err := r.db.WithContext(ctx).First(&skillset, "id = ?", skill.SkillSetID).Error; err != nil {
		return core.Skill{}, errors.Wrap(err, "skillset")
	}

	return skill, r.db.WithContext(ctx).Create(&skill).Error
}

// Get returns a skill by ID
func (r *repository) Get(ctx context.Context, id string) (core.Skill, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGet")
	defer span.End()

	var skill core.Skill
	return skill, r.db.WithContext(ctx).First(&skill, "id = ?", id).Error
}

// Update updates a skill
func (r *repository) Update(ctx context.Context, skill core.Skill) (core.Skill, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpdate")
	defer span.End()

	return skill, r.db.WithContext(ctx).Save(&skill).Error
}

// Delete deletes a skill by ID together with the character-skill rows
// that reference it
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDelete")
	defer span.End()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("skill_id = ?", id).Delete(&core.CharacterSkill{}).Error
		if err != nil {
			return err
		}
		return tx.Delete(&core.Skill{}, "id = ?", id).Error
	})
}

// List returns all skills
func (r *repository) List(ctx context.Context) ([]core.Skill, error) {
	ctx, span := tracer.Start(ctx, "RepositoryList")
	defer span.End()

	var skills []core.Skill
	if err := r.db.WithContext(ctx).Find(&skills).Error; err != nil {
		return []core.Skill{}, err
	}
	if skills == nil {
		return []core.Skill{}, nil
	}
	return skills, nil
}

// Count returns the skill count
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "RepositoryCount")
	defer span.End()

	var count int64
	return count, r.db.WithContext(ctx).Model(&core.Skill{}).Count(&count).Error
}
