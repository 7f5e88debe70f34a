package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/qorikusi/backend/internal/domain/model"
)

// CartRepository describes persistence operations for carts and their items.
type CartRepository interface {
	Create(ctx context.Context, customerID *int64) (*model.Cart, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*model.Cart, error)
	GetByCustomer(ctx context.Context, customerID int64) (*model.Cart, error)
	AddItem(ctx context.Context, cartID int64, productUUID uuid.UUID, quantity int) error
	SetItemQuantity(ctx context.Context, cartID int64, productUUID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, cartID int64, productUUID uuid.UUID) error
	ClearItems(ctx context.Context, cartID int64) error
	MergeInto(ctx context.Context, sourceID, targetID int64) error
	DeleteAbandoned(ctx context.Context, before time.Time) (int64, error)
}
