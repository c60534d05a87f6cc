package review

import (
	"context"

	"storefront/internal/domain"
)

// Reviews are always scoped to a product; every operation takes the parent
// product id so a review can never be read or moved across products.
type Repository interface {
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
	GetByID(ctx context.Context, productID, id int64) (*domain.Review, error)
	Create(ctx context.Context, rv domain.Review) (*domain.Review, error)
	Update(ctx context.Context, rv domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, productID, id int64) error
}
