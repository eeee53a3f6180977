package spell

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/yasumitsu/gurps-manager/core"
)

// Service is the interface for spell service
type Service interface {
	Create(ctx context.Context, spell core.Spell) (core.Spell, error)
	Get(ctx context.Context, id string) (core.Spell, error)
	Update(ctx context.Context, spell core.Spell) (core.Spell, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.Spell, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new spell service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates and creates a new spell
func (s *service) Create(ctx context.Context, spell core.Spell) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "ServiceCreate")
	defer span.End()

	if spell.ID != "" {
		return core.Spell{}, fmt.Errorf("id must be empty")
	}
	spell.ID = xid.New().String()

	if err := core.Validate(spell); err != nil {
		return core.Spell{}, err
	}

	return s.repo.Create(ctx, spell)
}

// Get returns a spell by ID
func (s *service) Get(ctx context.Context, id string) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "ServiceGet")
	defer span.End()

	return s.repo.Get(ctx, id)
}

// Update validates and updates an existing spell
func (s *service) Update(ctx context.Context, spell core.Spell) (core.Spell, error) {
	ctx, span := tracer.Start(ctx, "ServiceUpdate")
	defer span.End()

	if _, err := s.repo.Get(ctx, spell.ID); err != nil {
		return core.Spell{}, err
	}

	if err := core.Validate(spell); err != nil {
		return core.Spell{}, err
	}

	return s.repo.Update(ctx, spell)
}

// Delete deletes a spell by ID
func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ServiceDelete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}

// List returns all spells
func (s *service) List(ctx context.Context) ([]core.Spell, error) {
	ctx, span := tracer.Start(ctx, "ServiceList")
	defer span.End()

	return s.repo.List(ctx)
}

// Count returns the spell count
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "ServiceCount")
	defer span.End()

	return s.repo.Count(ctx)
}
