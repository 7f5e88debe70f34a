package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/qorikusi/backend/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
//
// Create persists the order, its lines, and the stock reservation for every
// line in one transaction; it fails with ErrInsufficientStock when any
// product's remaining stock cannot cover the requested quantity.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	ListActive(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
