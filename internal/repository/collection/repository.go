package collection

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Collection, error)
	GetByID(ctx context.Context, id int64) (*domain.Collection, error)
	Create(ctx context.Context, c domain.Collection) (*domain.Collection, error)
	Update(ctx context.Context, c domain.Collection) (*domain.Collection, error)
	Delete(ctx context.Context, id int64) error
	GetByTitle(ctx context.Context, title string) (*domain.Collection, error)
}
