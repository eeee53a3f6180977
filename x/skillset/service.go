package skillset

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/yasumitsu/gurps-manager/core"
)

// Service is the interface for skillset service
type Service interface {
	Create(ctx context.Context, skillset core.SkillSet) (core.SkillSet, error)
	Get(ctx context.Context, id string) (core.SkillSet, error)
	Update(ctx context.Context, skillset core.SkillSet) (core.SkillSet, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.SkillSet, error)
	ListSkills(ctx context.Context, id string) ([]core.Skill, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new skillset service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates and creates a new skillset
func (s *service) Create(ctx context.Context, skillset core.SkillSet) (core.SkillSet, error) {
	ctx, span := tracer.Start(ctx, "ServiceCreate")
	defer span.End()

	if skillset.ID != "" {
		return core.SkillSet{}, fmt.Errorf("id must be empty")
	}
	skillset.ID = xid.New().String()

	if err := core.Validate(skillset); err != nil {
		return core.SkillSet{}, err
	}

	return s.repo.Create(ctx, skillset)
}

// Get returns a skillset by ID
func (s *service) Get(ctx context.Context, id string) (core.SkillSet, error) {
	ctx, span := tracer.Start(ctx, "ServiceGet")
	defer span.End()

	return s.repo.Get(ctx, id)
}

// Update validates and updates an existing skillset
func (s *service) Update(ctx context.Context, skillset core.SkillSet) (core.SkillSet, error) {
	ctx, span := tracer.Start(ctx, "ServiceUpdate")
	defer span.End()

	if _, err := s.repo.Get(ctx, skillset.ID); err != nil {
		return core.SkillSet{}, err
	}

	if err := core.Validate(skillset); err != nil {
		return core.SkillSet{}, err
	}

	return s.repo.Update(ctx, skillset)
}

// Delete deletes a skillset by ID
func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ServiceDelete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}

// List returns all skillsets
func (s *service) List(ctx context.Context) ([]core.SkillSet, error) {
	ctx, span := tracer.Start(ctx, "ServiceList")
	defer span.End()

	return s.repo.List(ctx)
}

// ListSkills returns the skills grouped under a skillset
func (s *service) ListSkills(ctx context.Context, id string) ([]core.Skill, error) {
	ctx, span := tracer.Start(ctx, "ServiceListSkills")
	defer span.End()

	return s.repo.ListSkills(ctx, id)
}

// Count returns the skillset count
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "ServiceCount")
	defer span.End()

	return s.repo.Count(ctx)
}
