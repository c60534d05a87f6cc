package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is keyed by an opaque UUID token handed to the client on creation.
type Cart struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	Items     []CartItem `json:"items"`
}

// TotalPrice sums the live total of every item in the cart.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// CartItem references a product at its live price. At most one row exists
// per (cart, product) pair; repeated adds merge quantities.
type CartItem struct {
	ID        int64  `json:"id"`
	CartID    string `json:"cartId"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	// Product carries the live title and unit price, populated on reads.
	Product Product `json:"product"`
}

// TotalPrice is quantity times the product's current unit price.
func (i CartItem) TotalPrice() decimal.Decimal {
	return i.Product.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
