package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductPriceWithTax(t *testing.T) {
	cases := []struct {
		price string
		want  string
	}{
		{"49.99", "54.99"},
		{"10.00", "11.00"},
		{"19.99", "21.99"},
		{"0.01", "0.01"},
	}
	for _, tc := range cases {
		p := Product{UnitPrice: decimal.RequireFromString(tc.price)}
		if got := p.PriceWithTax().String(); got != tc.want {
			t.Errorf("PriceWithTax(%s) = %s, want %s", tc.price, got, tc.want)
		}
	}
}

func TestCartTotalPrice(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{Quantity: 2, Product: Product{UnitPrice: decimal.RequireFromString("10.50")}},
			{Quantity: 1, Product: Product{UnitPrice: decimal.RequireFromString("5.25")}},
		},
	}
	if got := cart.TotalPrice().String(); got != "26.25" {
		t.Fatalf("TotalPrice = %s, want 26.25", got)
	}
}

func TestCartTotalPriceEmpty(t *testing.T) {
	if got := (Cart{}).TotalPrice(); !got.IsZero() {
		t.Fatalf("TotalPrice of empty cart = %s, want 0", got)
	}
}

func TestCartItemTotalPriceTracksLivePrice(t *testing.T) {
	item := CartItem{Quantity: 3, Product: Product{UnitPrice: decimal.RequireFromString("2.00")}}
	if got := item.TotalPrice().String(); got != "6.00" {
		t.Fatalf("TotalPrice = %s, want 6.00", got)
	}
	item.Product.UnitPrice = decimal.RequireFromString("3.00")
	if got := item.TotalPrice().String(); got != "9.00" {
		t.Fatalf("TotalPrice after price change = %s, want 9.00", got)
	}
}
