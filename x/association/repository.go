package association

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

// Repository is the interface for association repository
type Repository interface {
	GetSkill(ctx context.Context, characterID string, skillID string) (core.CharacterSkill, error)
	UpsertSkill(ctx context.Context, association core.CharacterSkill) (core.CharacterSkill, error)
	DeleteSkill(ctx context.Context, characterID string, skillID string) error
	ListSkills(ctx context.Context, characterID string) ([]core.CharacterSkill, error)

	GetSpell(ctx context.Context, characterID string, spellID string) (core.CharacterSpell, error)
	UpsertSpell(ctx context.Context, association core.CharacterSpell) (core.CharacterSpell, error)
	DeleteSpell(ctx context.Context, characterID string, spellID string) error
	ListSpells(ctx context.Context, characterID string) ([]core.CharacterSpell, error)

	GetPossession(ctx context.Context, characterID string, itemID string) (core.Possession, error)
	UpsertPossession(ctx context.Context, association core.Possession) (core.Possession, error)
	DeletePossession(ctx context.Context, characterID string, itemID string) error
	ListPossessions(ctx context.Context, characterID string) ([]core.Possession, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new association repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) exists(ctx context.Context, model interface{}, id string, kind string) error {
	if err := r.db.WithContext(ctx).First(model, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, kind)
	}
	return nil
}

// GetSkill returns the character-skill row for a pair
func (r *repository) GetSkill(ctx context.Context, characterID string, skillID string) (core.CharacterSkill, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGetSkill")
	defer span.End()

	var association core.CharacterSkill
	err := r.db.WithContext(ctx).First(&association, "character_id = ? AND skill_id = ?", characterID, skillID).Error
	return association, err
}

// UpsertSkill creates or updates a character-skill row after checking
// both sides exist
func (r *repository) UpsertSkill(ctx context.Context, association core.CharacterSkill) (core.CharacterSkill, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpsertSkill")
	defer span.End()

	if err := r.exists(ctx, &core.Character{}, association.CharacterID, "character"); err != nil {
		return core.CharacterSkill{}, err
	}
	if err := r.exists(ctx, &core.Skill{}, association.SkillID, "skill"); err != nil {
		return core.CharacterSkill{}, err
	}

	return association, r.db.WithContext(ctx).Save(&association).Error
}

// DeleteSkill removes a character-skill row
func (r *repository) DeleteSkill(ctx context.Context, characterID string, skillID string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDeleteSkill")
	defer span.End()

	if _, err := r.GetSkill(ctx, characterID, skillID); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("character_id = ? AND skill_id = ?", characterID, skillID).
		Delete(&core.CharacterSkill{}).Error
}

// ListSkills returns the skill associations of a character
func (r *repository) ListSkills(ctx context.Context, characterID string) ([]core.CharacterSkill, error) {
	ctx, span := tracer.Start(ctx, "RepositoryListSkills")
	defer span.End()

	if err := r.exists(ctx, &core.Character{}, characterID, "character"); err != nil {
		return []core.CharacterSkill{}, err
	}

	var associations []core.CharacterSkill
	if err := r.db.WithContext(ctx).Where("character_id = ?", characterID).Find(&associations).Error; err != nil {
		return []core.CharacterSkill{}, err
	}
	if associations == nil {
		return []core.CharacterSkill{}, nil
	}
	return associations, nil
}

// GetSpell returns the character-spell row for a pair
func (r *repository) GetSpell(ctx context.Context, characterID string, spellID string) (core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGetSpell")
	defer span.End()

	var association core.CharacterSpell
	err := r.db.WithContext(ctx).First(&association, "character_id = ? AND spell_id = ?", characterID, spellID).Error
	return association, err
}

// UpsertSpell creates or updates a character-spell row after checking
// both sides exist
func (r *repository) UpsertSpell(ctx context.Context, association core.CharacterSpell) (core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpsertSpell")
	defer span.End()

	if err := r.exists(ctx, &core.Character{}, association.CharacterID, "character"); err != nil {
		return core.CharacterSpell{}, err
	}
	if err := r.exists(ctx, &core.Spell{}, association.SpellID, "spell"); err != nil {
		return core.CharacterSpell{}, err
	}

	return association, r.db.WithContext(ctx).Save(&association).Error
}

// DeleteSpell removes a character-spell row
func (r *repository) DeleteSpell(ctx context.Context, characterID string, spellID string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDeleteSpell")
	defer span.End()

	if _, err := r.GetSpell(ctx, characterID, spellID); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("character_id = ? AND spell_id = ?", characterID, spellID).
		Delete(&core.CharacterSpell{}).Error
}

// ListSpells returns the spell associations of a character
func (r *repository) ListSpells(ctx context.Context, characterID string) ([]core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "RepositoryListSpells")
	defer span.End()

	if err := r.exists(ctx, &core.Character{}, characterID, "character"); err != nil {
		return []core.CharacterSpell{}, err
	}

	var associations []core.CharacterSpell
	if err := r.db.WithContext(ctx).Where("character_id = ?", characterID).Find(&associations).Error; err != nil {
		return []core.CharacterSpell{}, err
	}
	if associations == nil {
		return []core.CharacterSpell{}, nil
	}
	return associations, nil
}

// GetPossession returns the possession row for a pair
func (r *repository) GetPossession(ctx context.Context, characterID string, itemID string) (core.Possession, error) {
	ctx, span := tracer.Start(ctx, "RepositoryGetPossession")
	defer span.End()

	var association core.Possession
	err := r.db.WithContext(ctx).First(&association, "character_id = ? AND item_id = ?", characterID, itemID).Error
	return association, err
}

// UpsertPossession creates or updates a possession row after checking
// both sides exist
func (r *repository) UpsertPossession(ctx context.Context, association core.Possession) (core.Possession, error) {
	ctx, span := tracer.Start(ctx, "RepositoryUpsertPossession")
	defer span.End()

	if err := r.exists(ctx, &core.Character{}, association.CharacterID, "character"); err != nil {
		return core.Possession{}, err
	}
	if err := r.exists(ctx, &core.Item{}, association.ItemID, "item"); err != nil {
		return core.Possession{}, err
	}

	return association, r.db.WithContext(ctx).Save(&association).Error
}

// DeletePossession removes a possession row
func (r *repository) DeletePossession(ctx context.Context, characterID string, itemID string) error {
	ctx, span := tracer.Start(ctx, "RepositoryDeletePossession")
	defer span.End()

	if _, err := r.GetPossession(ctx, characterID, itemID); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("character_id = ? AND item_id = ?", characterID, itemID).
		Delete(&core.Possession{}).Error
}

// ListPossessions returns the possessions of a character
func (r *repository) ListPossessions(ctx context.Context, characterID string) ([]core.Possession, error) {
	ctx, span := tracer.Start(ctx, "RepositoryListPossessions")
	defer span.End()

	if err := r.exists(ctx, &core.Character{}, characterID, "character"); err != nil {
		return []core.Possession{}, err
	}

	var associations []core.Possession
	if err := r.db.WithContext(ctx).Where("character_id = ?", characterID).Find(&associations).Error; err != nil {
		return []core.Possession{}, err
	}
	if associations == nil {
		return []core.Possession{}, nil
	}
	return associations, nil
}
