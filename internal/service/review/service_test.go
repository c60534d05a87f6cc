package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain"
)

type stubRepo struct {
	review     *domain.Review
	getErr     error
	lastCreate domain.Review
}

func (s *stubRepo) ListByProduct(_ context.Context, _ int64) ([]domain.Review, error) {
	return nil, nil
}

func (s *stubRepo) GetByID(_ context.Context, _, _ int64) (*domain.Review, error) {
	return s.review, s.getErr
}

func (s *stubRepo) Create(_ context.Context, rv domain.Review) (*domain.Review, error) {
	s.lastCreate = rv
	return &rv, nil
}

func (s *stubRepo) Update(_ context.Context, rv domain.Review) (*domain.Review, error) {
	return &rv, nil
}

func (s *stubRepo) Delete(_ context.Context, _, _ int64) error {
	return nil
}

type stubProductGetter struct {
	product *domain.Product
	err     error
}

func (s *stubProductGetter) GetByID(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func TestCreateScopesToPathProduct(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, &stubProductGetter{product: &domain.Product{ID: 7}})

	got, err := svc.Create(context.Background(), 7, Input{Name: "Ada", Description: "Great", Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProductID != 7 || repo.lastCreate.ProductID != 7 {
		t.Fatalf("review not bound to path product: %+v", got)
	}
	if got.Date.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("unexpected date: %s", got.Date)
	}
}

func TestCreateUnknownProduct(t *testing.T) {
	svc := New(&stubRepo{}, &stubProductGetter{err: domain.ErrNotFound})

	_, err := svc.Create(context.Background(), 7, Input{Name: "Ada", Description: "Great", Date: "2024-03-01"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPatchKeepsAbsentFields(t *testing.T) {
	stored := &domain.Review{ID: 5, ProductID: 7, Name: "Ada", Description: "Great", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	repo := &stubRepo{review: stored}
	svc := New(repo, &stubProductGetter{product: &domain.Product{ID: 7}})

	date := "2024-05-02"
	got, err := svc.Patch(context.Background(), 7, 5, PatchInput{Date: &date})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Ada" || got.Description != "Great" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if got.Date.Format("2006-01-02") != "2024-05-02" {
		t.Fatalf("unexpected date: %s", got.Date)
	}
}

func TestPatchBadDate(t *testing.T) {
	stored := &domain.Review{ID: 5, ProductID: 7, Name: "Ada"}
	svc := New(&stubRepo{review: stored}, &stubProductGetter{product: &domain.Product{ID: 7}})

	date := "05/02/2024"
	_, err := svc.Patch(context.Background(), 7, 5, PatchInput{Date: &date})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPatchMissingReview(t *testing.T) {
	svc := New(&stubRepo{getErr: domain.ErrNotFound}, &stubProductGetter{product: &domain.Product{ID: 7}})

	name := "Ada"
	if _, err := svc.Patch(context.Background(), 7, 5, PatchInput{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateBadDate(t *testing.T) {
	svc := New(&stubRepo{}, &stubProductGetter{product: &domain.Product{ID: 7}})

	_, err := svc.Create(context.Background(), 7, Input{Name: "Ada", Description: "Great", Date: "03/01/2024"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["date"]; !ok {
		t.Fatalf("expected date field error, got %+v", verr.Fields)
	}
}
