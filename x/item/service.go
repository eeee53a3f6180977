package item

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/yasumitsu/gurps-manager/core"
)

// Service is the interface for item service
type Service interface {
	Create(ctx context.Context, item core.Item) (core.Item, error)
	Get(ctx context.Context, id string) (core.Item, error)
	Update(ctx context.Context, item core.Item) (core.Item, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.Item, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new item service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates and creates a new item
func (s *service) Create(ctx context.Context, item core.Item) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "ServiceCreate")
	defer span.End()

	if item.ID != "" {
		return core.Item{}, fmt.Errorf("id must be empty")
	}
	item.ID = xid.New().String()

	if err := core.Validate(item); err != nil {
		return core.Item{}, err
	}

	return s.repo.Create(ctx, item)
}

// Get returns an item by ID
func (s *service) Get(ctx context.Context, id string) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "ServiceGet")
	defer span.End()

	return s.repo.Get(ctx, id)
}

// Update validates and updates an existing item
func (s *service) Update(ctx context.Context, item core.Item) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "ServiceUpdate")
	defer span.End()

	if _, err := s.repo.Get(ctx, item.ID); err != nil {
		return core.Item{}, err
	}

	if err := core.Validate(item); err != nil {
		return core.Item{}, err
	}

	return s.repo.Update(ctx, item)
}

// Delete deletes an item by ID
func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ServiceDelete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}

// List returns all items
func (s *service) List(ctx context.Context) ([]core.Item, error) {
	ctx, span := tracer.Start(ctx, "ServiceList")
	defer span.End()

	return s.repo.List(ctx)
}

// Count returns the item count
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "ServiceCount")
	defer span.End()

	return s.repo.Count(ctx)
}
