package campaign

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/yasumitsu/gurps-manager/core"
)

// Service is the interface for campaign service
type Service interface {
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

type service struct {
	repo Repository
}

// NewService creates a new campaign service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates and creates a new campaign
func (s *service) Create(ctx context.Context, campaign core.Campaign) (core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "ServiceCreate")
	defer span.End()

	if campaign.ID != "" {
		return core.Campaign{}, fmt.Errorf("id must be empty")
	}
	campaign.ID = xid.New().String()

	if err := core.Validate(campaign); err != nil {
		return core.Campaign{}, err
	}

	return s.repo.Create(ctx, campaign)
}

// Get returns a campaign by ID
func (s *service) Get(ctx context.Context, id string) (core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "ServiceGet")
	defer span.End()

	return s.repo.Get(ctx, id)
}

// Update validates and updates an existing campaign
func (s *service) Update(ctx context.Context, campaign core.Campaign) (core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "ServiceUpdate")
	defer span.End()

	if _, err := s.repo.Get(ctx, campaign.ID); err != nil {
		return core.Campaign{}, err
	}

	if err := core.Validate(campaign); err != nil {
		return core.Campaign{}, err
	}

	return s.repo.Update(ctx, campaign)
}

// Delete deletes a campaign by ID
func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ServiceDelete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}

// List returns all campaigns
func (s *service) List(ctx context.Context) ([]core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "ServiceList")
	defer span.End()

	return s.repo.List(ctx)
}

// AttachSkillSet adds a skillset to the campaign's pool
func (s *service) AttachSkillSet(ctx context.Context, id string, skillsetID string) error {
	ctx, span := tracer.Start(ctx, "ServiceAttachSkillSet")
	defer span.End()

	return s.repo.AttachSkillSet(ctx, id, skillsetID)
}

// DetachSkillSet removes a skillset from the campaign's pool
func (s *service) DetachSkillSet(ctx context.Context, id string, skillsetID string) error {
	ctx, span := tracer.Start(ctx, "ServiceDetachSkillSet")
	defer span.End()

	return s.repo.DetachSkillSet(ctx, id, skillsetID)
}

// ListSkillSets returns the skillsets attached to a campaign
func (s *service) ListSkillSets(ctx context.Context, id string) ([]core.SkillSet, error) {
	ctx, span := tracer.Start(ctx, "ServiceListSkillSets")
	defer span.End()

	return s.repo.ListSkillSets(ctx, id)
}

// Count returns the campaign count
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "ServiceCount")
	defer span.End()

	return s.repo.Count(ctx)
}
