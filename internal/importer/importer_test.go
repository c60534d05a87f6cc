package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

type stubProducts struct {
	upserts []domain.Product
}

func (s *stubProducts) UpsertBySlug(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.upserts = append(s.upserts, p)
	p.ID = int64(len(s.upserts))
	return &p, nil
}

type stubCollections struct {
	byTitle map[string]int64
	nextID  int64
	creates int
}

func (s *stubCollections) GetByTitle(_ context.Context, title string) (*domain.Collection, error) {
	if id, ok := s.byTitle[title]; ok {
		return &domain.Collection{ID: id, Title: title}, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubCollections) Create(_ context.Context, c domain.Collection) (*domain.Collection, error) {
	s.creates++
	s.nextID++
	if s.byTitle == nil {
		s.byTitle = make(map[string]int64)
	}
	s.byTitle[c.Title] = s.nextID
	c.ID = s.nextID
	return &c, nil
}

func TestRunImportsRowsAndCreatesCollections(t *testing.T) {
	input := strings.Join([]string{
		"title,slug,description,unit_price,inventory,collection",
		"Runner Sneaker,runner-sneaker,Road shoe,49.99,10,Shoes",
		"Trail Boot,trail-boot,,89.50,4,Shoes",
		"Ceramic Mug,ceramic-mug,Stoneware,12.99,30,Kitchen",
	}, "\n")

	products := &stubProducts{}
	collections := &stubCollections{}
	imp := NewCSVImporter(strings.NewReader(input), products, collections)

	n, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows imported, got %d", n)
	}
	if len(products.upserts) != 3 {
		t.Fatalf("expected 3 upserts, got %d", len(products.upserts))
	}
	// Shoes appears twice but the store is hit once.
	if collections.creates != 2 {
		t.Fatalf("expected 2 collection creates, got %d", collections.creates)
	}
	first := products.upserts[0]
	if first.Slug != "runner-sneaker" || !first.UnitPrice.Equal(decimal.RequireFromString("49.99")) || first.Inventory != 10 {
		t.Fatalf("unexpected first product: %+v", first)
	}
	if products.upserts[0].CollectionID != products.upserts[1].CollectionID {
		t.Fatalf("rows in the same collection got different ids")
	}
}

func TestRunReusesExistingCollections(t *testing.T) {
	input := "title,slug,description,unit_price,inventory,collection\n" +
		"Runner Sneaker,runner-sneaker,,49.99,10,Shoes\n"

	products := &stubProducts{}
	collections := &stubCollections{byTitle: map[string]int64{"Shoes": 7}, nextID: 7}
	imp := NewCSVImporter(strings.NewReader(input), products, collections)

	if _, err := imp.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if collections.creates != 0 {
		t.Fatalf("expected no creates, got %d", collections.creates)
	}
	if products.upserts[0].CollectionID != 7 {
		t.Fatalf("expected existing collection id 7, got %d", products.upserts[0].CollectionID)
	}
}

func TestRunRejectsBadPrice(t *testing.T) {
	input := "title,slug,description,unit_price,inventory,collection\n" +
		"Runner Sneaker,runner-sneaker,,free,10,Shoes\n"

	imp := NewCSVImporter(strings.NewReader(input), &stubProducts{}, &stubCollections{})

	n, err := imp.Run(context.Background())
	if err == nil {
		t.Fatalf("expected error for bad price")
	}
	if n != 0 {
		t.Fatalf("expected 0 rows imported, got %d", n)
	}
	if !strings.Contains(err.Error(), "unit_price") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunRejectsMissingRequiredFields(t *testing.T) {
	input := "title,slug,description,unit_price,inventory,collection\n" +
		",runner-sneaker,,49.99,10,Shoes\n"

	imp := NewCSVImporter(strings.NewReader(input), &stubProducts{}, &stubCollections{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing title")
	}
}
