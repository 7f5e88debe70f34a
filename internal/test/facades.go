package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"

	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
)

// AuthFacadeStub implements the auth handler facade with overridable funcs.
type AuthFacadeStub struct {
	RegisterClientFn func(context.Context, string, string) (*model.Customer, error)
	RegisterAdminFn  func(context.Context, string, string) (*model.Admin, error)
	LoginFn          func(context.Context, string, string) (*model.Session, error)
	ForgotPasswordFn func(context.Context, string) error
	ResetPasswordFn  func(context.Context, string, string) error
}

func (s AuthFacadeStub) RegisterClient(ctx context.Context, email, password string) (*model.Customer, error) {
	if s.RegisterClientFn != nil {
		return s.RegisterClientFn(ctx, email, password)
	}
	return &model.Customer{UUID: uuid.New(), Email: email, Active: true}, nil
}

func (s AuthFacadeStub) RegisterAdmin(ctx context.Context, username, password string) (*model.Admin, error) {
	if s.RegisterAdminFn != nil {
		return s.RegisterAdminFn(ctx, username, password)
	}
	return &model.Admin{UUID: uuid.New(), Username: username, Active: true}, nil
}

func (s AuthFacadeStub) Login(ctx context.Context, login, password string) (*model.Session, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, login, password)
	}
	return &model.Session{Token: "token", ExpiresIn: time.Hour, Roles: []string{model.RoleClient}}, nil
}

func (s AuthFacadeStub) ForgotPassword(ctx context.Context, email string) error {
	if s.ForgotPasswordFn != nil {
		return s.ForgotPasswordFn(ctx, email)
	}
	return nil
}

func (s AuthFacadeStub) ResetPassword(ctx context.Context, token, newPassword string) error {
	if s.ResetPasswordFn != nil {
		return s.ResetPasswordFn(ctx, token, newPassword)
	}
	return nil
}

// CustomerFacadeStub implements the customer handler facade with overridable funcs.
type CustomerFacadeStub struct {
	ProfileFn       func(context.Context, uuid.UUID) (*model.Customer, error)
	UpdateProfileFn func(context.Context, uuid.UUID, model.Person, string, string) (*model.Customer, error)
	AddressesFn     func(context.Context, uuid.UUID) ([]model.Address, error)
	AddAddressFn    func(context.Context, uuid.UUID, model.Address) (*model.Address, error)
	UpdateAddressFn func(context.Context, uuid.UUID, model.Address) (*model.Address, error)
	DeleteAddressFn func(context.Context, uuid.UUID, uuid.UUID) error
}

func (s CustomerFacadeStub) Profile(ctx context.Context, customerUUID uuid.UUID) (*model.Customer, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, customerUUID)
	}
	return &model.Customer{UUID: customerUUID, Active: true}, nil
}

func (s CustomerFacadeStub) UpdateProfile(ctx context.Context, customerUUID uuid.UUID, person model.Person, zodiacSign, moonPhase string) (*model.Customer, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, customerUUID, person, zodiacSign, moonPhase)
	}
	return &model.Customer{UUID: customerUUID, Person: person, ZodiacSign: zodiacSign, MoonPhase: moonPhase, Active: true}, nil
}

func (s CustomerFacadeStub) Addresses(ctx context.Context, customerUUID uuid.UUID) ([]model.Address, error) {
	if s.AddressesFn != nil {
		return s.AddressesFn(ctx, customerUUID)
	}
	return nil, nil
}

func (s CustomerFacadeStub) AddAddress(ctx context.Context, customerUUID uuid.UUID, address model.Address) (*model.Address, error) {
	if s.AddAddressFn != nil {
		return s.AddAddressFn(ctx, customerUUID, address)
	}
	address.UUID = uuid.New()
	return &address, nil
}

func (s CustomerFacadeStub) UpdateAddress(ctx context.Context, customerUUID uuid.UUID, address model.Address) (*model.Address, error) {
	if s.UpdateAddressFn != nil {
		return s.UpdateAddressFn(ctx, customerUUID, address)
	}
	return &address, nil
}

func (s CustomerFacadeStub) DeleteAddress(ctx context.Context, customerUUID, addressUUID uuid.UUID) error {
	if s.DeleteAddressFn != nil {
		return s.DeleteAddressFn(ctx, customerUUID, addressUUID)
	}
	return nil
}

// CatalogFacadeStub implements the catalog handler facade with overridable funcs.
type CatalogFacadeStub struct {
	CreateProductFn func(context.Context, model.ProductInput) (*model.Product, error)
	UpdateProductFn func(context.Context, uuid.UUID, model.ProductInput) (*model.Product, error)
	DeleteProductFn func(context.Context, uuid.UUID) error
	ProductFn       func(context.Context, uuid.UUID) (*model.Product, error)
	ActiveProductFn func(context.Context, uuid.UUID) (*model.Product, error)
	ProductsFn      func(context.Context, repository.ProductFilter) ([]model.Product, error)
	CatalogFn       func(context.Context, string, int, int) ([]model.Product, error)
	CategoriesFn    func(context.Context) ([]model.Category, error)
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, input)
	}
	return &model.Product{UUID: uuid.New(), Name: input.Name, Price: input.Price, Stock: input.Stock, Active: true}, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, productUUID uuid.UUID, input model.ProductInput) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, productUUID, input)
	}
	return &model.Product{UUID: productUUID, Name: input.Name, Price: input.Price, Stock: input.Stock, Active: true}, nil
}

func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, productUUID uuid.UUID) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, productUUID)
	}
	return nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, productUUID uuid.UUID) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, productUUID)
	}
	return &model.Product{UUID: productUUID, Active: true}, nil
}

func (s CatalogFacadeStub) ActiveProduct(ctx context.Context, productUUID uuid.UUID) (*model.Product, error) {
	if s.ActiveProductFn != nil {
		return s.ActiveProductFn(ctx, productUUID)
	}
	return &model.Product{UUID: productUUID, Active: true}, nil
}

func (s CatalogFacadeStub) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return nil, nil
}

func (s CatalogFacadeStub) Catalog(ctx context.Context, category string, limit, offset int) ([]model.Product, error) {
	if s.CatalogFn != nil {
		return s.CatalogFn(ctx, category, limit, offset)
	}
	return nil, nil
}

func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return nil, nil
}

// CartFacadeStub implements the cart handler facade with overridable funcs.
type CartFacadeStub struct {
	CreateAnonymousFn  func(context.Context) (*model.Cart, error)
	FindOrCreateFn     func(context.Context, uuid.UUID) (*model.Cart, error)
	GetFn              func(context.Context, uuid.UUID, *uuid.UUID) (*model.Cart, error)
	SnapshotFn         func(context.Context, uuid.UUID, *uuid.UUID) (*model.CartSnapshot, error)
	InternalSnapshotFn func(context.Context, uuid.UUID) (*model.CartSnapshot, error)
	AddItemFn          func(context.Context, uuid.UUID, uuid.UUID, int, *uuid.UUID) error
	SetItemQuantityFn  func(context.Context, uuid.UUID, uuid.UUID, int, *uuid.UUID) error
	RemoveItemFn       func(context.Context, uuid.UUID, uuid.UUID, *uuid.UUID) error
	ClearFn            func(context.Context, uuid.UUID, *uuid.UUID) error
	InternalClearFn    func(context.Context, uuid.UUID) error
	MergeFn            func(context.Context, uuid.UUID, uuid.UUID) (*model.Cart, error)
	PurgeAbandonedFn   func(context.Context, time.Duration) (int64, error)
}

func (s CartFacadeStub) CreateAnonymous(ctx context.Context) (*model.Cart, error) {
	if s.CreateAnonymousFn != nil {
		return s.CreateAnonymousFn(ctx)
	}
	return &model.Cart{UUID: uuid.New(), CreatedAt: time.Now()}, nil
}

func (s CartFacadeStub) FindOrCreate(ctx context.Context, customerUUID uuid.UUID) (*model.Cart, error) {
	if s.FindOrCreateFn != nil {
		return s.FindOrCreateFn(ctx, customerUUID)
	}
	return &model.Cart{UUID: uuid.New(), CreatedAt: time.Now()}, nil
}

func (s CartFacadeStub) Get(ctx context.Context, cartUUID uuid.UUID, caller *uuid.UUID) (*model.Cart, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, cartUUID, caller)
	}
	return &model.Cart{UUID: cartUUID, CreatedAt: time.Now()}, nil
}

func (s CartFacadeStub) Snapshot(ctx context.Context, cartUUID uuid.UUID, caller *uuid.UUID) (*model.CartSnapshot, error) {
	if s.SnapshotFn != nil {
		return s.SnapshotFn(ctx, cartUUID, caller)
	}
	return &model.CartSnapshot{CartUUID: cartUUID}, nil
}

func (s CartFacadeStub) InternalSnapshot(ctx context.Context, cartUUID uuid.UUID) (*model.CartSnapshot, error) {
	if s.InternalSnapshotFn != nil {
		return s.InternalSnapshotFn(ctx, cartUUID)
	}
	return &model.CartSnapshot{CartUUID: cartUUID}, nil
}

func (s CartFacadeStub) AddItem(ctx context.Context, cartUUID, productUUID uuid.UUID, quantity int, caller *uuid.UUID) error {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, cartUUID, productUUID, quantity, caller)
	}
	return nil
}

func (s CartFacadeStub) SetItemQuantity(ctx context.Context, cartUUID, productUUID uuid.UUID, quantity int, caller *uuid.UUID) error {
	if s.SetItemQuantityFn != nil {
		return s.SetItemQuantityFn(ctx, cartUUID, productUUID, quantity, caller)
	}
	return nil
}

func (s CartFacadeStub) RemoveItem(ctx context.Context, cartUUID, productUUID uuid.UUID, caller *uuid.UUID) error {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, cartUUID, productUUID, caller)
	}
	return nil
}

func (s CartFacadeStub) Clear(ctx context.Context, cartUUID uuid.UUID, caller *uuid.UUID) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, cartUUID, caller)
	}
	return nil
}

func (s CartFacadeStub) InternalClear(ctx context.Context, cartUUID uuid.UUID) error {
	if s.InternalClearFn != nil {
		return s.InternalClearFn(ctx, cartUUID)
	}
	return nil
}

func (s CartFacadeStub) Merge(ctx context.Context, anonymousCartUUID, customerUUID uuid.UUID) (*model.Cart, error) {
	if s.MergeFn != nil {
		return s.MergeFn(ctx, anonymousCartUUID, customerUUID)
	}
	return &model.Cart{UUID: uuid.New(), CreatedAt: time.Now()}, nil
}

func (s CartFacadeStub) PurgeAbandoned(ctx context.Context, maxAge time.Duration) (int64, error) {
	if s.PurgeAbandonedFn != nil {
		return s.PurgeAbandonedFn(ctx, maxAge)
	}
	return 0, nil
}

// OrderFacadeStub implements the order handler facade with overridable funcs.
type OrderFacadeStub struct {
	CreateFn         func(context.Context, uuid.UUID, uuid.UUID, string) (*model.Order, error)
	GetFn            func(context.Context, uuid.UUID, *uuid.UUID) (*model.Order, error)
	ListByCustomerFn func(context.Context, uuid.UUID) ([]model.Order, error)
	ListActiveFn     func(context.Context) ([]model.Order, error)
	UpdateStatusFn   func(context.Context, uuid.UUID, model.OrderStatus) (*model.Order, error)
}

func (s OrderFacadeStub) Create(ctx context.Context, customerUUID, cartUUID uuid.UUID, shippingType string) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customerUUID, cartUUID, shippingType)
	}
	return &model.Order{UUID: uuid.New(), CustomerUUID: customerUUID, Status: model.OrderStatusPendingPayment}, nil
}

func (s OrderFacadeStub) Get(ctx context.Context, orderUUID uuid.UUID, owner *uuid.UUID) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderUUID, owner)
	}
	return &model.Order{UUID: orderUUID, Status: model.OrderStatusPendingPayment}, nil
}

func (s OrderFacadeStub) ListByCustomer(ctx context.Context, customerUUID uuid.UUID) ([]model.Order, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerUUID)
	}
	return nil, nil
}

func (s OrderFacadeStub) ListActive(ctx context.Context) ([]model.Order, error) {
	if s.ListActiveFn != nil {
		return s.ListActiveFn(ctx)
	}
	return nil, nil
}

func (s OrderFacadeStub) UpdateStatus(ctx context.Context, orderUUID uuid.UUID, next model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderUUID, next)
	}
	return &model.Order{UUID: orderUUID, Status: next}, nil
}

// PaymentFacadeStub implements the payment handler facade with overridable funcs.
type PaymentFacadeStub struct {
	ProcessFn func(context.Context, uuid.UUID, uuid.UUID, decimal.Decimal, model.PaymentMethod, model.ReceiptRequest) (*model.Payment, *model.Receipt, error)
	GetFn     func(context.Context, uuid.UUID) (*model.Payment, error)
}

func (s PaymentFacadeStub) Process(ctx context.Context, customerUUID, orderUUID uuid.UUID, amount decimal.Decimal, method model.PaymentMethod, receipt model.ReceiptRequest) (*model.Payment, *model.Receipt, error) {
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, customerUUID, orderUUID, amount, method, receipt)
	}
	return &model.Payment{UUID: uuid.New(), Amount: amount, Method: method, Status: model.PaymentStatusCompleted}, nil, nil
}

func (s PaymentFacadeStub) Get(ctx context.Context, paymentUUID uuid.UUID) (*model.Payment, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, paymentUUID)
	}
	return &model.Payment{UUID: paymentUUID, Status: model.PaymentStatusCompleted}, nil
}
