package product

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
)

type Service struct {
	repo        productrepo.Repository
	orders      orderItemCounter
	collections collectionGetter
}

type orderItemCounter interface {
	CountItemsByProduct(ctx context.Context, productID int64) (int64, error)
}

type collectionGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Collection, error)
}

func New(repo productrepo.Repository, orders orderItemCounter, collections collectionGetter) *Service {
	return &Service{repo: repo, orders: orders, collections: collections}
}

// Input carries the writable product fields. Field-shape validation happens
// at the binding layer; the service checks referential semantics.
type Input struct {
	Title        string          `json:"title" binding:"required,max=255"`
	Slug         string          `json:"slug" binding:"required,max=255"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
	Inventory    int             `json:"inventory" binding:"min=0"`
	CollectionID int64           `json:"collection_id" binding:"required"`
}

// PatchInput is the partial-update shape: nil fields keep their stored value.
type PatchInput struct {
	Title        *string          `json:"title" binding:"omitempty,max=255"`
	Slug         *string          `json:"slug" binding:"omitempty,max=255"`
	Description  *string          `json:"description"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Inventory    *int             `json:"inventory" binding:"omitempty,min=0"`
	CollectionID *int64           `json:"collection_id"`
}

func (s *Service) List(ctx context.Context, filter productrepo.ListFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, productFromInput(in))
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Product, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	p := productFromInput(in)
	p.ID = id
	return s.repo.Update(ctx, p)
}

// Patch merges the provided fields onto the stored row and re-validates the
// result, so a partial body cannot sidestep the price or collection rules.
func (s *Service) Patch(ctx context.Context, id int64, in PatchInput) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.UnitPrice != nil {
		p.UnitPrice = *in.UnitPrice
	}
	if in.Inventory != nil {
		p.Inventory = *in.Inventory
	}
	if in.CollectionID != nil {
		p.CollectionID = *in.CollectionID
	}
	merged := Input{
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		UnitPrice:    p.UnitPrice,
		Inventory:    p.Inventory,
		CollectionID: p.CollectionID,
	}
	if err := s.validate(ctx, merged); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, *p)
}

// Delete refuses to remove a product that any order item references. The
// check runs before the storage delete, not as a database constraint.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.orders.CountItemsByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.ConflictError{Reason: "Product cannot be deleted because it is associated with an order item"}
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) validate(ctx context.Context, in Input) error {
	if !in.UnitPrice.IsPositive() {
		return domain.NewValidationError("unit_price", "Ensure this value is greater than 0.")
	}
	if in.UnitPrice.Exponent() < -2 {
		return domain.NewValidationError("unit_price", "Ensure that there are no more than 2 decimal places.")
	}
	if _, err := s.collections.GetByID(ctx, in.CollectionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("collection_id", "No collection with the given ID was found")
		}
		return err
	}
	return nil
}

func productFromInput(in Input) domain.Product {
	return domain.Product{
		Title:        in.Title,
		Slug:         in.Slug,
		Description:  in.Description,
		UnitPrice:    in.UnitPrice,
		Inventory:    in.Inventory,
		CollectionID: in.CollectionID,
	}
}
