package order

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// PlaceItem is one checkout line with the unit price snapshotted at
// placement time.
type PlaceItem struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// Place writes the order and its items and consumes the source cart in
	// one transaction.
	Place(ctx context.Context, customerID int64, cartID string, items []PlaceItem) (*domain.Order, error)
	CountItemsByProduct(ctx context.Context, productID int64) (int64, error)
}
