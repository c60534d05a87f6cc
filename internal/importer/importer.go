package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

type ProductWriter interface {
	UpsertBySlug(ctx context.Context, p domain.Product) (*domain.Product, error)
}

type CollectionStore interface {
	GetByTitle(ctx context.Context, title string) (*domain.Collection, error)
	Create(ctx context.Context, c domain.Collection) (*domain.Collection, error)
}

// CSVImporter reads catalog exports with the columns
// title,slug,description,unit_price,inventory,collection and upserts
// products by slug, creating collections by title as needed.
type CSVImporter struct {
	reader      *csv.Reader
	products    ProductWriter
	collections CollectionStore

	// collection title -> id, so repeated rows hit the store once
	collectionIDs map[string]int64
}

func NewCSVImporter(r io.Reader, products ProductWriter, collections CollectionStore) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:        csvr,
		products:      products,
		collections:   collections,
		collectionIDs: make(map[string]int64),
	}
}

// Run parses CSV rows and upserts the products they describe.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		if err := i.save(ctx, record, index); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, record []string, index map[string]int) error {
	title := pick(record, index, "title")
	slug := pick(record, index, "slug")
	collectionTitle := pick(record, index, "collection")
	if title == "" || slug == "" || collectionTitle == "" {
		return fmt.Errorf("invalid product row (missing required fields) for slug %q", slug)
	}

	unitPrice, err := decimal.NewFromString(pick(record, index, "unit_price"))
	if err != nil || !unitPrice.IsPositive() {
		return fmt.Errorf("invalid unit_price for slug %q", slug)
	}

	inventory := 0
	if v := pick(record, index, "inventory"); v != "" {
		inventory, err = strconv.Atoi(v)
		if err != nil || inventory < 0 {
			return fmt.Errorf("invalid inventory for slug %q", slug)
		}
	}

	collectionID, err := i.ensureCollection(ctx, collectionTitle)
	if err != nil {
		return fmt.Errorf("ensure collection %q: %w", collectionTitle, err)
	}

	p := domain.Product{
		Title:        title,
		Slug:         slug,
		Description:  pick(record, index, "description"),
		UnitPrice:    unitPrice,
		Inventory:    inventory,
		CollectionID: collectionID,
	}

	if _, err := i.products.UpsertBySlug(ctx, p); err != nil {
		return fmt.Errorf("upsert product %q: %w", slug, err)
	}
	return nil
}

func (i *CSVImporter) ensureCollection(ctx context.Context, title string) (int64, error) {
	if id, ok := i.collectionIDs[title]; ok {
		return id, nil
	}
	col, err := i.collections.GetByTitle(ctx, title)
	if errors.Is(err, domain.ErrNotFound) {
		col, err = i.collections.Create(ctx, domain.Collection{Title: title})
	}
	if err != nil {
		return 0, err
	}
	i.collectionIDs[title] = col.ID
	return col.ID, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
