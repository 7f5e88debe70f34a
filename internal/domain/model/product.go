package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups catalog products.
type Category struct {
	ID          int64
	UUID        uuid.UUID
	Name        string
	Description string
}

// ProductInput carries the writable product fields for create and update.
type ProductInput struct {
	CategoryUUID uuid.UUID
	Name         string
	Description  string
	Price        decimal.Decimal
	Stock        int
	MoonEnergy   string
	ImageURL     string
	Active       bool
}

// Product is a sellable catalog item. Active=false hides it from the
// catalog and blocks it from new orders.
type Product struct {
	ID          int64
	UUID        uuid.UUID
	CategoryID  int64
	Category    string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	MoonEnergy  string
	ImageURL    string
	Active      bool
}
