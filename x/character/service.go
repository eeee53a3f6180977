package character

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/yasumitsu/gurps-manager/core"
)

// Service is the interface for character service
type Service interface {
	Create(ctx context.Context, character core.Character) (core.Character, error)
	Get(ctx context.Context, id string) (core.Character, error)
	GetSheet(ctx context.Context, id string) (Sheet, error)
	Update(ctx context.Context, character core.Character) (core.Character, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.Character, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]core.Character, error)
	Count(ctx context.Context) (int64, error)

	CreateTrait(ctx context.Context, trait core.Trait) (core.Trait, error)
	UpdateTrait(ctx context.Context, trait core.Trait) (core.Trait, error)
	DeleteTrait(ctx context.Context, id string) error
	ListTraits(ctx context.Context, characterID string) ([]core.Trait, error)

	CreateHitLocation(ctx context.Context, location core.HitLocation) (core.HitLocation, error)
	UpdateHitLocation(ctx context.Context, location core.HitLocation) (core.HitLocation, error)
	DeleteHitLocation(ctx context.Context, id string) error
	ListHitLocations(ctx context.Context, characterID string) ([]core.HitLocation, error)
}

type service struct {
	repo Repository
}

// NewService creates a new character service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates and creates a new character
func (s *service) Create(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "ServiceCreate")
	defer span.End()

	if character.ID != "" {
		return core.Character{}, fmt.Errorf("id must be empty")
	}
	character.ID = xid.New().String()

	if err := core.Validate(character); err != nil {
		return core.Character{}, err
	}

	return s.repo.Create(ctx, character)
}

// Get returns a character by ID
func (s *service) Get(ctx context.Context, id string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "ServiceGet")
	defer span.End()

	return s.repo.Get(ctx, id)
}

// GetSheet returns a character with its derived statistics. The
// derivations are always recomputed, never read from storage.
func (s *service) GetSheet(ctx context.Context, id string) (Sheet, error) {
	ctx, span := tracer.Start(ctx, "ServiceGetSheet")
	defer span.End()

	character, err := s.repo.Get(ctx, id)
	if err != nil {
		return Sheet{}, err
	}

	return NewSheet(character), nil
}

// Update validates and updates an existing character
func (s *service) Update(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "ServiceUpdate")
	defer span.End()

	current, err := s.repo.Get(ctx, character.ID)
	if err != nil {
		return core.Character{}, err
	}
	if character.CampaignID == "" {
		character.CampaignID = current.CampaignID
	}

	if err := core.Validate(character); err != nil {
		return core.Character{}, err
	}

	return s.repo.Update(ctx, character)
}

// Delete deletes a character and everything it owns
func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ServiceDelete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}

// List returns all characters
func (s *service) List(ctx context.Context) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "ServiceList")
	defer span.End()

	return s.repo.List(ctx)
}

// ListByCampaign returns the characters belonging to a campaign
func (s *service) ListByCampaign(ctx context.Context, campaignID string) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "ServiceListByCampaign")
	defer span.End()

	return s.repo.ListByCampaign(ctx, campaignID)
}

// Count returns the character count
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "ServiceCount")
	defer span.End()

	return s.repo.Count(ctx)
}

// CreateTrait validates and creates a new trait
func (s *service) CreateTrait(ctx context.Context, trait core.Trait) (core.Trait, error) {
	ctx, span := tracer.Start(ctx, "ServiceCreateTrait")
	defer span.End()

	if trait.ID != "" {
		return core.Trait{}, fmt.Errorf("id must be empty")
	}
	trait.ID = xid.New().String()

	if err := core.Validate(trait); err != nil {
		return core.Trait{}, err
	}

	return s.repo.CreateTrait(ctx, trait)
}

// UpdateTrait validates and updates an existing trait
func (s *service) UpdateTrait(ctx context.Context, trait core.Trait) (core.Trait, error) {
	ctx, span := tracer.Start(ctx, "ServiceUpdateTrait")
	defer span.End()

	current, err := s.repo.GetTrait(ctx, trait.ID)
	if err != nil {
		return core.Trait{}, err
	}
	trait.CharacterID = current.CharacterID

	if err := core.Validate(trait); err != nil {
		return core.Trait{}, err
	}

	return s.repo.UpdateTrait(ctx, trait)
}

// DeleteTrait deletes a trait by ID
func (s *service) DeleteTrait(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ServiceDeleteTrait")
	defer span.End()

	if _, err := s.repo.GetTrait(ctx, id); err != nil {
		return err
	}

	return s.repo.DeleteTrait(ctx, id)
}

// ListTraits returns the traits owned by a character
func (s *service) ListTraits(ctx context.Context, characterID string) ([]core.Trait, error) {
	ctx, span := tracer.Start(ctx, "ServiceListTraits")
	defer span.End()

	if _, err := s.repo.Get(ctx, characterID); err != nil {
		return []core.Trait{}, err
	}

	return s.repo.ListTraits(ctx, characterID)
}

// CreateHitLocation validates and creates a new hit location
func (s *service) CreateHitLocation(ctx context.Context, location core.HitLocation) (core.HitLocation, error) {
	ctx, span := tracer.Start(ctx, "ServiceCreateHitLocation")
	defer span.End()

	if location.ID != "" {
		return core.HitLocation{}, fmt.Errorf("id must be empty")
	}
	location.ID = xid.New().String()

	if err := core.Validate(location); err != nil {
		return core.HitLocation{}, err
	}

	return s.repo.CreateHitLocation(ctx, location)
}

// UpdateHitLocation validates and updates an existing hit location
func (s *service) UpdateHitLocation(ctx context.Context, location core.HitLocation) (core.HitLocation, error) {
	ctx, span := tracer.Start(ctx, "ServiceUpdateHitLocation")
	defer span.End()

	current, err := s.repo.GetHitLocation(ctx, location.ID)
	if err != nil {
		return core.HitLocation{}, err
	}
	location.CharacterID = current.CharacterID

	if err := core.Validate(location); err != nil {
		return core.HitLocation{}, err
	}

	return s.repo.UpdateHitLocation(ctx, location)
}

// DeleteHitLocation deletes a hit location by ID
func (s *service) DeleteHitLocation(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ServiceDeleteHitLocation")
	defer span.End()

	if _, err := s.repo.GetHitLocation(ctx, id); err != nil {
		return err
	}

	return s.repo.DeleteHitLocation(ctx, id)
}

// ListHitLocations returns the hit locations owned by a character
func (s *service) ListHitLocations(ctx context.Context, characterID string) ([]core.HitLocation, error) {
	ctx, span := tracer.Start(ctx, "ServiceListHitLocations")
	defer span.End()

	if _, err := s.repo.Get(ctx, characterID); err != nil {
		return []core.HitLocation{}, err
	}

	return s.repo.ListHitLocations(ctx, characterID)
}
