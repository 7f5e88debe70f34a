package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/qorikusi/backend/internal/domain/model"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	Active   *bool
	Category string
	Limit    int
	Offset   int
}

// ProductRepository describes persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	GetByUUID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetActiveByUUID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	FindByUUIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)
}

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*model.Category, error)
}
