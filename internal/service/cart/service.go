package cart

import (
	"context"
	"errors"

	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

type Service struct {
	repo     cartrepo.Repository
	products productGetter
}

type productGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productGetter) *Service {
	return &Service{repo: repo, products: products}
}

// AddItemInput takes the product by id; the cart comes from the path.
type AddItemInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// UpdateItemInput is the restricted update surface: quantity only.
type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func (s *Service) Create(ctx context.Context) (*domain.Cart, error) {
	return s.repo.Create(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Cart, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AddItem merges quantity into an existing row for the same product, or
// inserts a new one.
func (s *Service) AddItem(ctx context.Context, cartID string, in AddItemInput) (*domain.CartItem, error) {
	if _, err := s.repo.GetByID(ctx, cartID); err != nil {
		return nil, err
	}
	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("product_id", "No product with the given ID was found")
		}
		return nil, err
	}
	return s.repo.AddItem(ctx, cartID, in.ProductID, in.Quantity)
}

func (s *Service) ListItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	if _, err := s.repo.GetByID(ctx, cartID); err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, cartID)
}

func (s *Service) GetItem(ctx context.Context, cartID string, itemID int64) (*domain.CartItem, error) {
	if _, err := s.repo.GetByID(ctx, cartID); err != nil {
		return nil, err
	}
	return s.repo.GetItem(ctx, cartID, itemID)
}

func (s *Service) UpdateItem(ctx context.Context, cartID string, itemID int64, in UpdateItemInput) (*domain.CartItem, error) {
	if _, err := s.repo.GetByID(ctx, cartID); err != nil {
		return nil, err
	}
	return s.repo.UpdateItemQuantity(ctx, cartID, itemID, in.Quantity)
}

func (s *Service) DeleteItem(ctx context.Context, cartID string, itemID int64) error {
	if _, err := s.repo.GetByID(ctx, cartID); err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, cartID, itemID)
}
