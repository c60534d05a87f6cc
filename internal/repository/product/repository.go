package product

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// ListFilter narrows and orders a product listing. Filters compose; a nil
// pointer means the clause is absent.
type ListFilter struct {
	CollectionID *int64
	UnitPriceGT  *decimal.Decimal
	UnitPriceLT  *decimal.Decimal
	Search       string
	// Ordering is "unit_price" or "last_update", with a leading '-' for
	// descending. Anything else falls back to id order.
	Ordering string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	CountByCollection(ctx context.Context, collectionID int64) (int64, error)
	UpsertBySlug(ctx context.Context, p domain.Product) (*domain.Product, error)
}
