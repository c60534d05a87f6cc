package httpserver

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
	productrepo "storefront/internal/repository/product"
	cartsvc "storefront/internal/service/cart"
	collectionsvc "storefront/internal/service/collection"
	customersvc "storefront/internal/service/customer"
	ordersvc "storefront/internal/service/order"
	productsvc "storefront/internal/service/product"
	reviewsvc "storefront/internal/service/review"
)

// testRouter builds the full route table over stub repositories.
func testRouter(t *testing.T, products *stubProductRepo, collections *stubCollectionRepo, carts *stubCartRepo, orders *stubOrderRepo) *gin.Engine {
	t.Helper()

	deps := Deps{
		ProductSvc:    productsvc.New(products, orders, collections),
		CollectionSvc: collectionsvc.New(collections, products),
		ReviewSvc:     reviewsvc.New(&stubReviewRepo{}, products),
		CartSvc:       cartsvc.New(carts, products),
		OrderSvc:      ordersvc.New(orders, carts, &stubCustomerRepo{}),
		CustomerSvc:   customersvc.New(&stubCustomerRepo{}),
	}
	router, err := buildRouter(log.New(io.Discard, "", 0), nil, deps, []string{"*"})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

type stubProductRepo struct {
	products       []domain.Product
	product        *domain.Product
	getErr         error
	created        *domain.Product
	deleteCalled   bool
	countByCol     int64
	lastListFilter productrepo.ListFilter
}

func (s *stubProductRepo) List(_ context.Context, f productrepo.ListFilter) ([]domain.Product, error) {
	s.lastListFilter = f
	return s.products, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.getErr
}

func (s *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.created != nil {
		return s.created, nil
	}
	p.ID = 7
	return &p, nil
}

func (s *stubProductRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func (s *stubProductRepo) Delete(_ context.Context, _ int64) error {
	s.deleteCalled = true
	return nil
}

func (s *stubProductRepo) CountByCollection(_ context.Context, _ int64) (int64, error) {
	return s.countByCol, nil
}

func (s *stubProductRepo) UpsertBySlug(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

type stubCollectionRepo struct {
	collection *domain.Collection
	getErr     error
}

func (s *stubCollectionRepo) List(_ context.Context) ([]domain.Collection, error) {
	if s.collection == nil {
		return nil, nil
	}
	return []domain.Collection{*s.collection}, nil
}

func (s *stubCollectionRepo) GetByID(_ context.Context, _ int64) (*domain.Collection, error) {
	return s.collection, s.getErr
}

func (s *stubCollectionRepo) Create(_ context.Context, c domain.Collection) (*domain.Collection, error) {
	c.ID = 1
	return &c, nil
}

func (s *stubCollectionRepo) Update(_ context.Context, c domain.Collection) (*domain.Collection, error) {
	return &c, nil
}

func (s *stubCollectionRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (s *stubCollectionRepo) GetByTitle(_ context.Context, _ string) (*domain.Collection, error) {
	return s.collection, s.getErr
}

type stubCartRepo struct {
	cart   *domain.Cart
	getErr error
	item   *domain.CartItem
}

func (s *stubCartRepo) Create(_ context.Context) (*domain.Cart, error) {
	return s.cart, nil
}

func (s *stubCartRepo) GetByID(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.getErr
}

func (s *stubCartRepo) Delete(_ context.Context, _ string) error {
	return s.getErr
}

func (s *stubCartRepo) AddItem(_ context.Context, _ string, _ int64, _ int) (*domain.CartItem, error) {
	return s.item, nil
}

func (s *stubCartRepo) ListItems(_ context.Context, _ string) ([]domain.CartItem, error) {
	if s.cart == nil {
		return nil, nil
	}
	return s.cart.Items, nil
}

func (s *stubCartRepo) GetItem(_ context.Context, _ string, _ int64) (*domain.CartItem, error) {
	if s.item == nil {
		return nil, domain.ErrNotFound
	}
	return s.item, nil
}

func (s *stubCartRepo) UpdateItemQuantity(_ context.Context, _ string, _ int64, quantity int) (*domain.CartItem, error) {
	if s.item == nil {
		return nil, domain.ErrNotFound
	}
	s.item.Quantity = quantity
	return s.item, nil
}

func (s *stubCartRepo) DeleteItem(_ context.Context, _ string, _ int64) error {
	return nil
}

type stubOrderRepo struct {
	orders         []domain.Order
	order          *domain.Order
	itemsByProduct int64
}

func (s *stubOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	return s.orders, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ int64) (*domain.Order, error) {
	if s.order == nil {
		return nil, domain.ErrNotFound
	}
	return s.order, nil
}

func (s *stubOrderRepo) Place(_ context.Context, _ int64, _ string, _ []orderrepo.PlaceItem) (*domain.Order, error) {
	return s.order, nil
}

func (s *stubOrderRepo) CountItemsByProduct(_ context.Context, _ int64) (int64, error) {
	return s.itemsByProduct, nil
}

type stubReviewRepo struct{}

func (s *stubReviewRepo) ListByProduct(_ context.Context, _ int64) ([]domain.Review, error) {
	return nil, nil
}

func (s *stubReviewRepo) GetByID(_ context.Context, _, _ int64) (*domain.Review, error) {
	return nil, domain.ErrNotFound
}

func (s *stubReviewRepo) Create(_ context.Context, rv domain.Review) (*domain.Review, error) {
	rv.ID = 1
	return &rv, nil
}

func (s *stubReviewRepo) Update(_ context.Context, rv domain.Review) (*domain.Review, error) {
	return &rv, nil
}

func (s *stubReviewRepo) Delete(_ context.Context, _, _ int64) error {
	return nil
}

type stubCustomerRepo struct{}

func (s *stubCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	return nil, nil
}

func (s *stubCustomerRepo) GetByID(_ context.Context, _ int64) (*domain.Customer, error) {
	return &domain.Customer{ID: 9, Membership: domain.MembershipBronze}, nil
}

func (s *stubCustomerRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	c.ID = 9
	return &c, nil
}

func (s *stubCustomerRepo) Update(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	return &c, nil
}
