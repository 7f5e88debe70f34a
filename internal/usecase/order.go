package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qorikusi/backend/internal/adapter/cartclient"
	"github.com/qorikusi/backend/internal/adapter/catalogclient"
	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
	"github.com/qorikusi/backend/internal/pkg/codes"
)

// OrderUseCase turns carts into orders and drives the order lifecycle.
type OrderUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	carts     cartclient.Client
	catalog   catalogclient.Client
	gen       *codes.Generator
	logger    *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	carts cartclient.Client,
	catalog catalogclient.Client,
	gen *codes.Generator,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		customers: customers,
		carts:     carts,
		catalog:   catalog,
		gen:       gen,
		logger:    logger,
	}
}

// Create builds an order from the customer's cart: every line is revalidated
// against the live catalog and repriced at the moment of purchase, stock is
// reserved, and the cart is emptied once the order lands. The order total is
// copied from the cart snapshot, so it can disagree with the sum of the
// live-priced line subtotals when a price moved in between. The order starts
// in PendingPayment.
func (u *OrderUseCase) Create(ctx context.Context, customerUUID, cartUUID uuid.UUID, shippingType string) (*model.Order, error) {
	customer, err := u.customers.GetByUUID(ctx, customerUUID)
	if err != nil {
		return nil, err
	}

	snapshot, err := u.carts.Snapshot(ctx, cartUUID)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Lines) == 0 {
		return nil, domainErrors.ErrCartNotFound
	}

	now := time.Now()
	order := model.Order{
		Code:         u.gen.OrderCode(now),
		CustomerID:   customer.ID,
		CustomerUUID: customer.UUID,
		Status:       model.OrderStatusPendingPayment,
		ShippingType: shippingType,
		Total:        snapshot.Total,
	}

	for _, line := range snapshot.Lines {
		product, err := u.catalog.Product(ctx, line.ProductUUID)
		if err != nil {
			return nil, err
		}
		if !product.Active {
			return nil, domainErrors.ErrProductNotFound
		}
		if product.Stock < line.Quantity {
			return nil, domainErrors.ErrInsufficientStock
		}
		order.Lines = append(order.Lines, model.OrderLine{
			ProductUUID: product.UUID,
			Quantity:    line.Quantity,
			Subtotal:    product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	created, err := u.orders.Create(ctx, &order)
	if err != nil {
		return nil, err
	}

	// The order exists; a cart that would not empty is an inconvenience,
	// not a reason to fail the purchase.
	if err := u.carts.Clear(ctx, cartUUID); err != nil {
		u.logger.Warn("failed to clear cart after order creation",
			slog.String("cart", cartUUID.String()),
			slog.String("order", created.Code),
			slog.String("error", err.Error()),
		)
	}
	return created, nil
}

// Get returns one order. A client asking for somebody else's order is
// refused outright, not told the order does not exist; an admin caller
// passes a nil owner and sees everything.
func (u *OrderUseCase) Get(ctx context.Context, orderUUID uuid.UUID, owner *uuid.UUID) (*model.Order, error) {
	order, err := u.orders.GetByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}
	if owner != nil && order.CustomerUUID != *owner {
		return nil, domainErrors.ErrAccessDenied
	}
	return order, nil
}

// ListByCustomer returns the customer's purchase history, newest first.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerUUID uuid.UUID) ([]model.Order, error) {
	customer, err := u.customers.GetByUUID(ctx, customerUUID)
	if err != nil {
		return nil, err
	}
	return u.orders.ListByCustomer(ctx, customer.ID)
}

// ListActive returns the in-flight orders the back office still has to act
// on. Terminal orders are excluded.
func (u *OrderUseCase) ListActive(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListActive(ctx)
}

// UpdateStatus moves an order along its lifecycle. Only transitions from the
// legal move table are accepted.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderUUID uuid.UUID, next model.OrderStatus) (*model.Order, error) {
	order, err := u.orders.GetByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domainErrors.ErrInvalidTransition
	}
	if err := u.orders.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}
