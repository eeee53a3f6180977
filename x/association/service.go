package association

import (
	"context"
	"errors"

	"github.com/rs/xid"
	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

// Service is the interface for association service
type Service interface {
	PutSkill(ctx context.Context, association core.CharacterSkill) (core.CharacterSkill, error)
	DeleteSkill(ctx context.Context, characterID string, skillID string) error
	ListSkills(ctx context.Context, characterID string) ([]core.CharacterSkill, error)

	PutSpell(ctx context.Context, association core.CharacterSpell) (core.CharacterSpell, error)
	DeleteSpell(ctx context.Context, characterID string, spellID string) error
	ListSpells(ctx context.Context, characterID string) ([]core.CharacterSpell, error)

	PutPossession(ctx context.Context, association core.Possession) (core.Possession, error)
	DeletePossession(ctx context.Context, characterID string, itemID string) error
	ListPossessions(ctx context.Context, characterID string) ([]core.Possession, error)
}

type service struct {
	repo Repository
}

// NewService creates a new association service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PutSkill validates and upserts a character-skill association. The
// row keeps its identity when the pair already exists, so the
// uniqueness invariant holds across repeated puts.
func (s *service) PutSkill(ctx context.Context, association core.CharacterSkill) (core.CharacterSkill, error) {
	ctx, span := tracer.Start(ctx, "ServicePutSkill")
	defer span.End()

	current, err := s.repo.GetSkill(ctx, association.CharacterID, association.SkillID)
	if err == nil {
		association.ID = current.ID
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		association.ID = xid.New().String()
	} else {
		return core.CharacterSkill{}, err
	}

	if err := core.Validate(association); err != nil {
		return core.CharacterSkill{}, err
	}

	return s.repo.UpsertSkill(ctx, association)
}

// DeleteSkill removes a character-skill association
func (s *service) DeleteSkill(ctx context.Context, characterID string, skillID string) error {
	ctx, span := tracer.Start(ctx, "ServiceDeleteSkill")
	defer span.End()

	return s.repo.DeleteSkill(ctx, characterID, skillID)
}

// ListSkills returns the skill associations of a character
func (s *service) ListSkills(ctx context.Context, characterID string) ([]core.CharacterSkill, error) {
	ctx, span := tracer.Start(ctx, "ServiceListSkills")
	defer span.End()

	return s.repo.ListSkills(ctx, characterID)
}

// PutSpell validates and upserts a character-spell association
func (s *service) PutSpell(ctx context.Context, association core.CharacterSpell) (core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "ServicePutSpell")
	defer span.End()

	current, err := s.repo.GetSpell(ctx, association.CharacterID, association.SpellID)
	if err == nil {
		association.ID = current.ID
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		association.ID = xid.New().String()
	} else {
		return core.CharacterSpell{}, err
	}

	if err := core.Validate(association); err != nil {
		return core.CharacterSpell{}, err
	}

	return s.repo.UpsertSpell(ctx, association)
}

// DeleteSpell removes a character-spell association
func (s *service) DeleteSpell(ctx context.Context, characterID string, spellID string) error {
	ctx, span := tracer.Start(ctx, "ServiceDeleteSpell")
	defer span.End()

	return s.repo.DeleteSpell(ctx, characterID, spellID)
}

// ListSpells returns the spell associations of a character
func (s *service) ListSpells(ctx context.Context, characterID string) ([]core.CharacterSpell, error) {
	ctx, span := tracer.Start(ctx, "ServiceListSpells")
	defer span.End()

	return s.repo.ListSpells(ctx, characterID)
}

// PutPossession validates and upserts a possession
func (s *service) PutPossession(ctx context.Context, association core.Possession) (core.Possession, error) {
	ctx, span := tracer.Start(ctx, "ServicePutPossession")
	defer span.End()

	current, err := s.repo.GetPossession(ctx, association.CharacterID, association.ItemID)
	if err == nil {
		association.ID = current.ID
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		association.ID = xid.New().String()
	} else {
		return core.Possession{}, err
	}

	if err := core.Validate(association); err != nil {
		return core.Possession{}, err
	}

	return s.repo.UpsertPossession(ctx, association)
}

// DeletePossession removes a possession
func (s *service) DeletePossession(ctx context.Context, characterID string, itemID string) error {
	ctx, span := tracer.Start(ctx, "ServiceDeletePossession")
	defer span.End()

	return s.repo.DeletePossession(ctx, characterID, itemID)
}

// ListPossessions returns the possessions of a character
func (s *service) ListPossessions(ctx context.Context, characterID string) ([]core.Possession, error) {
	ctx, span := tracer.Start(ctx, "ServiceListPossessions")
	defer span.End()

	return s.repo.ListPossessions(ctx, characterID)
}
