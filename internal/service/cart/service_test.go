package cart

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

type stubRepo struct {
	cart          *domain.Cart
	getErr        error
	item          *domain.CartItem
	addErr        error
	lastAddCart   string
	lastAddProd   int64
	lastAddQty    int
	lastUpdateQty int
}

func (s *stubRepo) Create(_ context.Context) (*domain.Cart, error) {
	return s.cart, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.getErr
}

func (s *stubRepo) Delete(_ context.Context, _ string) error {
	return s.getErr
}

func (s *stubRepo) AddItem(_ context.Context, cartID string, productID int64, quantity int) (*domain.CartItem, error) {
	s.lastAddCart = cartID
	s.lastAddProd = productID
	s.lastAddQty = quantity
	return s.item, s.addErr
}

func (s *stubRepo) ListItems(_ context.Context, _ string) ([]domain.CartItem, error) {
	if s.cart == nil {
		return nil, nil
	}
	return s.cart.Items, nil
}

func (s *stubRepo) GetItem(_ context.Context, _ string, _ int64) (*domain.CartItem, error) {
	return s.item, nil
}

func (s *stubRepo) UpdateItemQuantity(_ context.Context, _ string, _ int64, quantity int) (*domain.CartItem, error) {
	s.lastUpdateQty = quantity
	return s.item, nil
}

func (s *stubRepo) DeleteItem(_ context.Context, _ string, _ int64) error {
	return nil
}

type stubProductGetter struct {
	product *domain.Product
	err     error
}

func (s *stubProductGetter) GetByID(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func TestAddItemUnknownProduct(t *testing.T) {
	repo := &stubRepo{cart: &domain.Cart{ID: "cart"}}
	svc := New(repo, &stubProductGetter{err: domain.ErrNotFound})

	_, err := svc.AddItem(context.Background(), "cart", AddItemInput{ProductID: 99, Quantity: 1})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msgs := verr.Fields["product_id"]
	if len(msgs) != 1 || msgs[0] != "No product with the given ID was found" {
		t.Fatalf("unexpected messages: %+v", verr.Fields)
	}
}

func TestAddItemUnknownCart(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := New(repo, &stubProductGetter{product: &domain.Product{ID: 1}})

	_, err := svc.AddItem(context.Background(), "missing", AddItemInput{ProductID: 1, Quantity: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddItemHappyPath(t *testing.T) {
	item := &domain.CartItem{ID: 5, ProductID: 1, Quantity: 3}
	repo := &stubRepo{cart: &domain.Cart{ID: "cart"}, item: item}
	svc := New(repo, &stubProductGetter{product: &domain.Product{ID: 1}})

	got, err := svc.AddItem(context.Background(), "cart", AddItemInput{ProductID: 1, Quantity: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != item {
		t.Fatalf("unexpected item: %+v", got)
	}
	if repo.lastAddCart != "cart" || repo.lastAddProd != 1 || repo.lastAddQty != 3 {
		t.Fatalf("add item not called as expected: %s %d %d", repo.lastAddCart, repo.lastAddProd, repo.lastAddQty)
	}
}

func TestUpdateItemQuantityOnly(t *testing.T) {
	item := &domain.CartItem{ID: 5, Quantity: 7}
	repo := &stubRepo{cart: &domain.Cart{ID: "cart"}, item: item}
	svc := New(repo, &stubProductGetter{})

	got, err := svc.UpdateItem(context.Background(), "cart", 5, UpdateItemInput{Quantity: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != item || repo.lastUpdateQty != 7 {
		t.Fatalf("unexpected update: %+v qty=%d", got, repo.lastUpdateQty)
	}
}

func TestUpdateItemUnknownCart(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := New(repo, &stubProductGetter{})

	_, err := svc.UpdateItem(context.Background(), "missing", 5, UpdateItemInput{Quantity: 2})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
