package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
)

// CartUseCase covers cart lifecycle: anonymous and customer carts, item
// management, the priced snapshot, and the merge performed at login.
//
// Every cart operation takes the caller's identity (nil for a guest). An
// anonymous cart is a capability: whoever holds its UUID may use it. A cart
// bound to a customer is usable by that customer alone; anyone else gets
// ErrAccessDenied. The Internal variants skip the check for trusted
// service-to-service calls.
type CartUseCase struct {
	carts     repository.CartRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(
	carts repository.CartRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
) *CartUseCase {
	return &CartUseCase{carts: carts, products: products, customers: customers}
}

// CreateAnonymous opens an unowned cart for a guest session.
func (u *CartUseCase) CreateAnonymous(ctx context.Context) (*model.Cart, error) {
	return u.carts.Create(ctx, nil)
}

// FindOrCreate returns the customer's cart, opening one on first use.
func (u *CartUseCase) FindOrCreate(ctx context.Context, customerUUID uuid.UUID) (*model.Cart, error) {
	customer, err := u.customers.GetByUUID(ctx, customerUUID)
	if err != nil {
		return nil, err
	}
	cart, err := u.carts.GetByCustomer(ctx, customer.ID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domainErrors.ErrCartNotFound) {
		return nil, err
	}
	return u.carts.Create(ctx, &customer.ID)
}

// Get returns a cart with its items.
func (u *CartUseCase) Get(ctx context.Context, cartUUID uuid.UUID, caller *uuid.UUID) (*model.Cart, error) {
	return u.ownedCart(ctx, cartUUID, caller)
}

// Snapshot prices the cart against the live catalog. Lines whose product has
// vanished or gone inactive are dropped from the projection; prices are
// whatever the catalog says right now, not what they were when the item was
// added.
func (u *CartUseCase) Snapshot(ctx context.Context, cartUUID uuid.UUID, caller *uuid.UUID) (*model.CartSnapshot, error) {
	cart, err := u.ownedCart(ctx, cartUUID, caller)
	if err != nil {
		return nil, err
	}
	return u.snapshotCart(ctx, cart)
}

// InternalSnapshot is the unchecked projection for trusted callers (the
// orders service pricing a checkout).
func (u *CartUseCase) InternalSnapshot(ctx context.Context, cartUUID uuid.UUID) (*model.CartSnapshot, error) {
	cart, err := u.carts.GetByUUID(ctx, cartUUID)
	if err != nil {
		return nil, err
	}
	return u.snapshotCart(ctx, cart)
}

func (u *CartUseCase) snapshotCart(ctx context.Context, cart *model.Cart) (*model.CartSnapshot, error) {
	snapshot := model.CartSnapshot{CartUUID: cart.UUID, Total: decimal.Zero}
	if len(cart.Items) == 0 {
		return &snapshot, nil
	}

	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductUUID)
	}
	products, err := u.products.FindByUUIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byUUID := make(map[uuid.UUID]*model.Product, len(products))
	for i := range products {
		byUUID[products[i].UUID] = &products[i]
	}

	for _, item := range cart.Items {
		product, ok := byUUID[item.ProductUUID]
		if !ok || !product.Active {
			continue
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		snapshot.Lines = append(snapshot.Lines, model.CartSnapshotLine{
			ProductUUID: product.UUID,
			Category:    product.Category,
			Name:        product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			Subtotal:    subtotal,
			ImageURL:    product.ImageURL,
		})
		snapshot.Total = snapshot.Total.Add(subtotal)
	}
	return &snapshot, nil
}

// AddItem puts quantity units of a product into the cart, stacking onto an
// existing line. Only active products can be added.
func (u *CartUseCase) AddItem(ctx context.Context, cartUUID, productUUID uuid.UUID, quantity int, caller *uuid.UUID) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	cart, err := u.ownedCart(ctx, cartUUID, caller)
	if err != nil {
		return err
	}
	if _, err := u.products.GetActiveByUUID(ctx, productUUID); err != nil {
		return err
	}
	return u.carts.AddItem(ctx, cart.ID, productUUID, quantity)
}

// SetItemQuantity pins a line to an exact quantity. Zero removes the line.
func (u *CartUseCase) SetItemQuantity(ctx context.Context, cartUUID, productUUID uuid.UUID, quantity int, caller *uuid.UUID) error {
	if quantity < 0 {
		return domainErrors.ErrInvalidAmount
	}
	cart, err := u.ownedCart(ctx, cartUUID, caller)
	if err != nil {
		return err
	}
	if quantity == 0 {
		return u.carts.RemoveItem(ctx, cart.ID, productUUID)
	}
	return u.carts.SetItemQuantity(ctx, cart.ID, productUUID, quantity)
}

// RemoveItem drops a product line from the cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, cartUUID, productUUID uuid.UUID, caller *uuid.UUID) error {
	cart, err := u.ownedCart(ctx, cartUUID, caller)
	if err != nil {
		return err
	}
	return u.carts.RemoveItem(ctx, cart.ID, productUUID)
}

// Clear empties the cart but keeps it alive.
func (u *CartUseCase) Clear(ctx context.Context, cartUUID uuid.UUID, caller *uuid.UUID) error {
	cart, err := u.ownedCart(ctx, cartUUID, caller)
	if err != nil {
		return err
	}
	return u.carts.ClearItems(ctx, cart.ID)
}

// InternalClear empties the cart for trusted callers (the orders service
// after a successful checkout).
func (u *CartUseCase) InternalClear(ctx context.Context, cartUUID uuid.UUID) error {
	cart, err := u.carts.GetByUUID(ctx, cartUUID)
	if err != nil {
		return err
	}
	return u.carts.ClearItems(ctx, cart.ID)
}

// Merge folds an anonymous cart into the customer's cart at login, summing
// quantities where both carts hold the same product. The anonymous cart is
// gone afterwards.
func (u *CartUseCase) Merge(ctx context.Context, anonymousCartUUID, customerUUID uuid.UUID) (*model.Cart, error) {
	source, err := u.carts.GetByUUID(ctx, anonymousCartUUID)
	if err != nil {
		return nil, err
	}
	if source.CustomerID != nil {
		return nil, domainErrors.ErrAccessDenied
	}

	target, err := u.FindOrCreate(ctx, customerUUID)
	if err != nil {
		return nil, err
	}
	if err := u.carts.MergeInto(ctx, source.ID, target.ID); err != nil {
		return nil, err
	}
	return u.carts.GetByUUID(ctx, target.UUID)
}

// PurgeAbandoned deletes anonymous carts older than maxAge. Returns how many
// carts went away.
func (u *CartUseCase) PurgeAbandoned(ctx context.Context, maxAge time.Duration) (int64, error) {
	return u.carts.DeleteAbandoned(ctx, time.Now().Add(-maxAge))
}

// ownedCart loads the cart and verifies the caller may touch it.
func (u *CartUseCase) ownedCart(ctx context.Context, cartUUID uuid.UUID, caller *uuid.UUID) (*model.Cart, error) {
	cart, err := u.carts.GetByUUID(ctx, cartUUID)
	if err != nil {
		return nil, err
	}
	if cart.CustomerID == nil {
		return cart, nil
	}
	if caller == nil {
		return nil, domainErrors.ErrAccessDenied
	}
	customer, err := u.customers.GetByUUID(ctx, *caller)
	if err != nil {
		return nil, domainErrors.ErrAccessDenied
	}
	if customer.ID != *cart.CustomerID {
		return nil, domainErrors.ErrAccessDenied
	}
	return cart, nil
}
