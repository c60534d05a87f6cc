package cart

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	Create(ctx context.Context) (*domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	Delete(ctx context.Context, id string) error

	// AddItem merges quantity into an existing (cart, product) row or
	// inserts a new one, atomically.
	AddItem(ctx context.Context, cartID string, productID int64, quantity int) (*domain.CartItem, error)
	ListItems(ctx context.Context, cartID string) ([]domain.CartItem, error)
	GetItem(ctx context.Context, cartID string, itemID int64) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID string, itemID int64, quantity int) (*domain.CartItem, error)
	DeleteItem(ctx context.Context, cartID string, itemID int64) error
}
