package order

import (
	"context"
	"errors"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

type Service struct {
	repo      orderrepo.Repository
	carts     cartGetter
	customers customerGetter
}

type cartGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
}

type customerGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

func New(repo orderrepo.Repository, carts cartGetter, customers customerGetter) *Service {
	return &Service{repo: repo, carts: carts, customers: customers}
}

type PlaceInput struct {
	CartID     string `json:"cart_id" binding:"required"`
	CustomerID int64  `json:"customer_id" binding:"required"`
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// Place turns a cart into an order. Each line's current unit price becomes
// the order item snapshot and the cart is consumed.
func (s *Service) Place(ctx context.Context, in PlaceInput) (*domain.Order, error) {
	if _, err := s.customers.GetByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("customer_id", "No customer with the given ID was found")
		}
		return nil, err
	}

	cart, err := s.carts.GetByID(ctx, in.CartID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("cart_id", "No cart with the given ID was found")
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.NewValidationError("cart_id", "The cart is empty")
	}

	items := make([]orderrepo.PlaceItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, orderrepo.PlaceItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.UnitPrice,
		})
	}
	return s.repo.Place(ctx, in.CustomerID, cart.ID, items)
}
