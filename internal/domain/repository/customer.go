package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/qorikusi/backend/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Reactivate(ctx context.Context, id int64, passwordHash string) error
	UpdateProfile(ctx context.Context, id int64, person model.Person, zodiacSign, moonPhase string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// AdminRepository describes persistence operations for back-office accounts.
type AdminRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*model.Admin, error)
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	Reactivate(ctx context.Context, id int64, passwordHash string) error
}

// AddressRepository describes persistence operations for shipping addresses.
// All mutations are scoped to the owning customer.
type AddressRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Address, error)
	Create(ctx context.Context, address *model.Address) (*model.Address, error)
	Update(ctx context.Context, customerID int64, address *model.Address) (*model.Address, error)
	Delete(ctx context.Context, customerID int64, id uuid.UUID) error
}
