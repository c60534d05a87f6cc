package collection

import (
	"context"

	"storefront/internal/domain"
	collectionrepo "storefront/internal/repository/collection"
)

type Service struct {
	repo     collectionrepo.Repository
	products productCounter
}

type productCounter interface {
	CountByCollection(ctx context.Context, collectionID int64) (int64, error)
}

func New(repo collectionrepo.Repository, products productCounter) *Service {
	return &Service{repo: repo, products: products}
}

type Input struct {
	Title string `json:"title" binding:"required,max=255"`
}

// PatchInput leaves absent fields untouched.
type PatchInput struct {
	Title *string `json:"title" binding:"omitempty,max=255"`
}

func (s *Service) List(ctx context.Context) ([]domain.Collection, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Collection, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Collection, error) {
	return s.repo.Create(ctx, domain.Collection{Title: in.Title})
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Collection, error) {
	return s.repo.Update(ctx, domain.Collection{ID: id, Title: in.Title})
}

func (s *Service) Patch(ctx context.Context, id int64, in PatchInput) (*domain.Collection, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		c.Title = *in.Title
	}
	return s.repo.Update(ctx, *c)
}

// Delete refuses to remove a collection that still has products.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.products.CountByCollection(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.ConflictError{Reason: "Collection cannot be deleted because it includes one or more products"}
	}
	return s.repo.Delete(ctx, id)
}
