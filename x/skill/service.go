package skill

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/yasumitsu/gurps-manager/core"
)

// Service is the interface for skill service
type Service interface {
	Create(ctx context.Context, skill core.Skill) (core.Skill, error)
	Get(ctx context.Context, id string) (core.Skill, error)
	Update(ctx context.Context, skill core.Skill) (core.Skill, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.Skill, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new skill service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates and creates a new skill
func (s *service) Create(ctx context.Context, skill core.Skill) (core.Skill, error) {
	ctx, span := tracer.Start(ctx, "ServiceCreate")
	defer span.End()

	if skill.ID != "" {
		return core.Skill{}, fmt.Errorf("id must be empty")
	}
	skill.ID = xid.New().String()

	if err := core.Validate(skill); err != nil {
		return core.Skill{}, err
	}

	return s.repo.Create(ctx, skill)
}

// Get returns a skill by ID
func (s *service) Get(ctx context.Context, id string) (core.Skill, error) {
	ctx, span := tracer.Start(ctx, "ServiceGet")
	defer span.End()

	return s.repo.Get(ctx, id)
}

// Update validates and updates an existing skill
func (s *service) Update(ctx context.Context, skill core.Skill) (core.Skill, error) {
	ctx, span := tracer.Start(ctx, "ServiceUpdate")
	defer span.End()

	if _, err := s.repo.Get(ctx, skill.ID); err != nil {
		return core.Skill{}, err
	}

	if err := core.Validate(skill); err != nil {
		return core.Skill{}, err
	}

	return s.repo.Update(ctx, skill)
}

// Delete deletes a skill by ID
func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ServiceDelete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}

// List returns all skills
func (s *service) List(ctx context.Context) ([]core.Skill, error) {
	ctx, span := tracer.Start(ctx, "ServiceList")
	defer span.End()

	return s.repo.List(ctx)
}

// Count returns the skill count
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "ServiceCount")
	defer span.End()

	return s.repo.Count(ctx)
}
