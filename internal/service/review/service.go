package review

import (
	"context"
	"time"

	"storefront/internal/domain"
	reviewrepo "storefront/internal/repository/review"
)

type Service struct {
	repo     reviewrepo.Repository
	products productGetter
}

type productGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo reviewrepo.Repository, products productGetter) *Service {
	return &Service{repo: repo, products: products}
}

// Input never carries a product id; the parent comes from the request path
// so a client cannot reattach a review to another product.
type Input struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
}

// PatchInput leaves absent fields untouched.
type PatchInput struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (s *Service) List(ctx context.Context, productID int64) ([]domain.Review, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.ListByProduct(ctx, productID)
}

func (s *Service) Get(ctx context.Context, productID, id int64) (*domain.Review, error) {
	return s.repo.GetByID(ctx, productID, id)
}

func (s *Service) Create(ctx context.Context, productID int64, in Input) (*domain.Review, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Review{
		ProductID:   productID,
		Name:        in.Name,
		Description: in.Description,
		Date:        date,
	})
}

func (s *Service) Update(ctx context.Context, productID, id int64, in Input) (*domain.Review, error) {
	if _, err := s.repo.GetByID(ctx, productID, id); err != nil {
		return nil, err
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, domain.Review{
		ID:          id,
		ProductID:   productID,
		Name:        in.Name,
		Description: in.Description,
		Date:        date,
	})
}

func (s *Service) Patch(ctx context.Context, productID, id int64, in PatchInput) (*domain.Review, error) {
	rv, err := s.repo.GetByID(ctx, productID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		rv.Name = *in.Name
	}
	if in.Description != nil {
		rv.Description = *in.Description
	}
	if in.Date != nil {
		date, err := parseDate(*in.Date)
		if err != nil {
			return nil, err
		}
		rv.Date = date
	}
	return s.repo.Update(ctx, *rv)
}

func (s *Service) Delete(ctx context.Context, productID, id int64) error {
	return s.repo.Delete(ctx, productID, id)
}

func parseDate(v string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}
	return date, nil
}
