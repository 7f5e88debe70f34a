package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
)

// AuthFacade describes the account operations exposed by the auth service.
type AuthFacade interface {
	RegisterClient(ctx context.Context, email, password string) (*model.Customer, error)
	RegisterAdmin(ctx context.Context, username, password string) (*model.Admin, error)
	Login(ctx context.Context, login, password string) (*model.Session, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// CustomerFacade describes profile and address operations.
type CustomerFacade interface {
	Profile(ctx context.Context, customerUUID uuid.UUID) (*model.Customer, error)
	UpdateProfile(ctx context.Context, customerUUID uuid.UUID, person model.Person, zodiacSign, moonPhase string) (*model.Customer, error)
	Addresses(ctx context.Context, customerUUID uuid.UUID) ([]model.Address, error)
	AddAddress(ctx context.Context, customerUUID uuid.UUID, address model.Address) (*model.Address, error)
	UpdateAddress(ctx context.Context, customerUUID uuid.UUID, address model.Address) (*model.Address, error)
	DeleteAddress(ctx context.Context, customerUUID, addressUUID uuid.UUID) error
}

// CatalogFacade describes catalog management and browsing operations.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, productUUID uuid.UUID, input model.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, productUUID uuid.UUID) error
	Product(ctx context.Context, productUUID uuid.UUID) (*model.Product, error)
	ActiveProduct(ctx context.Context, productUUID uuid.UUID) (*model.Product, error)
	Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	Catalog(ctx context.Context, category string, limit, offset int) ([]model.Product, error)
	Categories(ctx context.Context) ([]model.Category, error)
}

// CartFacade describes cart operations.
type CartFacade interface {
	CreateAnonymous(ctx context.Context) (*model.Cart, error)
	FindOrCreate(ctx context.Context, customerUUID uuid.UUID) (*model.Cart, error)
	Get(ctx context.Context, cartUUID uuid.UUID, caller *uuid.UUID) (*model.Cart, error)
	Snapshot(ctx context.Context, cartUUID uuid.UUID, caller *uuid.UUID) (*model.CartSnapshot, error)
	InternalSnapshot(ctx context.Context, cartUUID uuid.UUID) (*model.CartSnapshot, error)
	AddItem(ctx context.Context, cartUUID, productUUID uuid.UUID, quantity int, caller *uuid.UUID) error
	SetItemQuantity(ctx context.Context, cartUUID, productUUID uuid.UUID, quantity int, caller *uuid.UUID) error
	RemoveItem(ctx context.Context, cartUUID, productUUID uuid.UUID, caller *uuid.UUID) error
	Clear(ctx context.Context, cartUUID uuid.UUID, caller *uuid.UUID) error
	InternalClear(ctx context.Context, cartUUID uuid.UUID) error
	Merge(ctx context.Context, anonymousCartUUID, customerUUID uuid.UUID) (*model.Cart, error)
	PurgeAbandoned(ctx context.Context, maxAge time.Duration) (int64, error)
}

// OrderFacade describes order operations.
type OrderFacade interface {
	Create(ctx context.Context, customerUUID, cartUUID uuid.UUID, shippingType string) (*model.Order, error)
	Get(ctx context.Context, orderUUID uuid.UUID, owner *uuid.UUID) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerUUID uuid.UUID) ([]model.Order, error)
	ListActive(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderUUID uuid.UUID, next model.OrderStatus) (*model.Order, error)
}

// PaymentFacade describes payment operations.
type PaymentFacade interface {
	Process(ctx context.Context, customerUUID, orderUUID uuid.UUID, amount decimal.Decimal, method model.PaymentMethod, receipt model.ReceiptRequest) (*model.Payment, *model.Receipt, error)
	Get(ctx context.Context, paymentUUID uuid.UUID) (*model.Payment, error)
}
