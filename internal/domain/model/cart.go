package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is a shopping cart. CustomerID is nil for anonymous carts, which the
// cleanup job removes once they age out.
type Cart struct {
	ID         int64
	UUID       uuid.UUID
	CustomerID *int64
	CreatedAt  time.Time
	Items      []CartItem
}

// CartItem is one product/quantity pair inside a cart.
type CartItem struct {
	ID          int64
	UUID        uuid.UUID
	CartID      int64
	ProductUUID uuid.UUID
	Quantity    int
}

// CartSnapshot is the read-only projection of a cart served to the orders
// service: lines priced at snapshot time plus the computed total.
type CartSnapshot struct {
	CartUUID uuid.UUID
	Lines    []CartSnapshotLine
	Total    decimal.Decimal
}

// CartSnapshotLine freezes one cart line with its live catalog price.
type CartSnapshotLine struct {
	ProductUUID uuid.UUID
	Category    string
	Name        string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
	ImageURL    string
}
