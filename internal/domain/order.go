package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses.
const (
	PaymentPending  = "P"
	PaymentComplete = "C"
	PaymentFailed   = "F"
)

type Order struct {
	ID            int64       `json:"id"`
	PlacedAt      time.Time   `json:"placedAt"`
	PaymentStatus string      `json:"paymentStatus"`
	CustomerID    int64       `json:"customerId"`
	Items         []OrderItem `json:"items,omitempty"`
}

// OrderItem fixes quantity and unit price at placement time; unlike a
// CartItem it never tracks the live product price.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}
