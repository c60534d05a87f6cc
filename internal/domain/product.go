package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Inventory    int             `json:"inventory"`
	LastUpdate   time.Time       `json:"lastUpdate"`
	CollectionID int64           `json:"collectionId"`
}

// taxRate is the multiplier applied when deriving a tax-inclusive price.
var taxRate = decimal.NewFromFloat(1.1)

// PriceWithTax returns the unit price with tax applied, rounded to two
// fractional digits. Computed at read time, never stored.
func (p Product) PriceWithTax() decimal.Decimal {
	return p.UnitPrice.Mul(taxRate).Round(2)
}
