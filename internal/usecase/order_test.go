package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/pkg/codes"
	testhelpers "github.com/qorikusi/backend/internal/test"
)

type cartClientStub struct {
	snapshot *model.CartSnapshot
	err      error

	cleared  []uuid.UUID
	clearErr error
}

func (s *cartClientStub) Snapshot(context.Context, uuid.UUID) (*model.CartSnapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func (s *cartClientStub) Clear(_ context.Context, cartUUID uuid.UUID) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.cleared = append(s.cleared, cartUUID)
	return nil
}

type catalogClientStub struct {
	products map[uuid.UUID]*model.Product
}

func (s catalogClientStub) Product(_ context.Context, productUUID uuid.UUID) (*model.Product, error) {
	if p, ok := s.products[productUUID]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrProductNotFound
}

type orderFixture struct {
	uc        *OrderUseCase
	orders    *testhelpers.OrderRepositoryStub
	customers *testhelpers.CustomerRepositoryStub
	carts     *cartClientStub
	catalog   catalogClientStub
}

func newOrderFixture() orderFixture {
	orders := testhelpers.NewOrderRepositoryStub()
	customers := testhelpers.NewCustomerRepositoryStub()
	carts := &cartClientStub{}
	catalog := catalogClientStub{products: make(map[uuid.UUID]*model.Product)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	uc := NewOrderUseCase(orders, customers, carts, catalog, codes.NewGenerator(1), logger)
	return orderFixture{uc: uc, orders: orders, customers: customers, carts: carts, catalog: catalog}
}

func snapshotLine(p *model.Product, quantity int) model.CartSnapshotLine {
	return model.CartSnapshotLine{
		ProductUUID: p.UUID,
		Name:        p.Name,
		UnitPrice:   p.Price,
		Quantity:    quantity,
		Subtotal:    p.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func TestCreateOrder(t *testing.T) {
	f := newOrderFixture()
	customer := f.customers.Seed(&model.Customer{Email: "maria@example.test", Active: true})
	tea := &model.Product{UUID: uuid.New(), Name: "Moon Tea", Price: decimal.RequireFromString("12.50"), Stock: 10, Active: true}
	candle := &model.Product{UUID: uuid.New(), Name: "Candle", Price: decimal.RequireFromString("3.10"), Stock: 5, Active: true}
	f.catalog.products[tea.UUID] = tea
	f.catalog.products[candle.UUID] = candle

	cartUUID := uuid.New()
	f.carts.snapshot = &model.CartSnapshot{
		CartUUID: cartUUID,
		Lines:    []model.CartSnapshotLine{snapshotLine(tea, 2), snapshotLine(candle, 1)},
		Total:    decimal.RequireFromString("28.10"),
	}

	order, err := f.uc.Create(context.Background(), customer.UUID, cartUUID, "Delivery")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if order.Status != model.OrderStatusPendingPayment {
		t.Fatalf("expected PendingPayment, got %s", order.Status)
	}
	if !order.Total.Equal(decimal.RequireFromString("28.10")) {
		t.Fatalf("expected total 28.10, got %s", order.Total)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(order.Lines))
	}
	if !strings.HasPrefix(order.Code, "QRK-") {
		t.Fatalf("expected generated order code, got %q", order.Code)
	}
	if len(f.carts.cleared) != 1 || f.carts.cleared[0] != cartUUID {
		t.Fatalf("expected cart cleared, got %v", f.carts.cleared)
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	f := newOrderFixture()
	customer := f.customers.Seed(&model.Customer{Email: "maria@example.test", Active: true})
	f.carts.snapshot = &model.CartSnapshot{CartUUID: uuid.New()}

	if _, err := f.uc.Create(context.Background(), customer.UUID, uuid.New(), "Pickup"); !errors.Is(err, domainErrors.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	f := newOrderFixture()
	customer := f.customers.Seed(&model.Customer{Email: "maria@example.test", Active: true})
	tea := &model.Product{UUID: uuid.New(), Name: "Moon Tea", Price: decimal.NewFromInt(10), Stock: 1, Active: true}
	f.catalog.products[tea.UUID] = tea
	f.carts.snapshot = &model.CartSnapshot{CartUUID: uuid.New(), Lines: []model.CartSnapshotLine{snapshotLine(tea, 3)}}

	if _, err := f.uc.Create(context.Background(), customer.UUID, uuid.New(), "Pickup"); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if len(f.orders.Orders) != 0 {
		t.Fatal("expected no order persisted")
	}
}

func TestCreateOrderInactiveProduct(t *testing.T) {
	f := newOrderFixture()
	customer := f.customers.Seed(&model.Customer{Email: "maria@example.test", Active: true})
	retired := &model.Product{UUID: uuid.New(), Name: "Retired", Price: decimal.NewFromInt(10), Stock: 5, Active: false}
	f.catalog.products[retired.UUID] = retired
	f.carts.snapshot = &model.CartSnapshot{CartUUID: uuid.New(), Lines: []model.CartSnapshotLine{snapshotLine(retired, 1)}, Total: decimal.NewFromInt(10)}

	if _, err := f.uc.Create(context.Background(), customer.UUID, uuid.New(), "Pickup"); !errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCreateOrderSurvivesCartClearFailure(t *testing.T) {
	f := newOrderFixture()
	customer := f.customers.Seed(&model.Customer{Email: "maria@example.test", Active: true})
	tea := &model.Product{UUID: uuid.New(), Name: "Moon Tea", Price: decimal.NewFromInt(10), Stock: 5, Active: true}
	f.catalog.products[tea.UUID] = tea
	f.carts.snapshot = &model.CartSnapshot{CartUUID: uuid.New(), Lines: []model.CartSnapshotLine{snapshotLine(tea, 1)}, Total: decimal.NewFromInt(10)}
	f.carts.clearErr = domainErrors.ErrUpstreamUnavailable

	order, err := f.uc.Create(context.Background(), customer.UUID, uuid.New(), "Pickup")
	if err != nil {
		t.Fatalf("expected order despite clear failure, got %v", err)
	}
	if order == nil || order.ID == 0 {
		t.Fatal("expected persisted order")
	}
}

func TestCreateOrderTotalFollowsCheckoutSnapshot(t *testing.T) {
	f := newOrderFixture()
	customer := f.customers.Seed(&model.Customer{Email: "maria@example.test", Active: true})
	tea := &model.Product{UUID: uuid.New(), Name: "Moon Tea", Price: decimal.RequireFromString("15.00"), Stock: 10, Active: true}
	f.catalog.products[tea.UUID] = tea

	// The catalog price moved after the cart was priced. The order keeps
	// the figure the customer checked out with.
	f.carts.snapshot = &model.CartSnapshot{
		CartUUID: uuid.New(),
		Lines: []model.CartSnapshotLine{{
			ProductUUID: tea.UUID,
			Name:        tea.Name,
			UnitPrice:   decimal.RequireFromString("12.50"),
			Quantity:    2,
			Subtotal:    decimal.RequireFromString("25.00"),
		}},
		Total: decimal.RequireFromString("25.00"),
	}

	order, err := f.uc.Create(context.Background(), customer.UUID, uuid.New(), "Pickup")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !order.Total.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("expected snapshot total 25.00, got %s", order.Total)
	}
}

func TestGetOrderOwnership(t *testing.T) {
	f := newOrderFixture()
	owner := uuid.New()
	stranger := uuid.New()
	order := f.orders.Seed(&model.Order{CustomerUUID: owner, Status: model.OrderStatusPendingPayment})

	if _, err := f.uc.Get(context.Background(), order.UUID, &owner); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if _, err := f.uc.Get(context.Background(), order.UUID, &stranger); !errors.Is(err, domainErrors.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for foreign order, got %v", err)
	}
	if _, err := f.uc.Get(context.Background(), order.UUID, nil); err != nil {
		t.Fatalf("admin lookup failed: %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newOrderFixture()
	order := f.orders.Seed(&model.Order{Status: model.OrderStatusPendingPayment})

	updated, err := f.uc.UpdateStatus(context.Background(), order.UUID, model.OrderStatusPaid)
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if updated.Status != model.OrderStatusPaid {
		t.Fatalf("expected Paid, got %s", updated.Status)
	}

	if _, err := f.uc.UpdateStatus(context.Background(), order.UUID, model.OrderStatusDelivered); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for Paid->Delivered, got %v", err)
	}
}

func TestListActiveExcludesTerminal(t *testing.T) {
	f := newOrderFixture()
	f.orders.Seed(&model.Order{Status: model.OrderStatusPendingPayment})
	f.orders.Seed(&model.Order{Status: model.OrderStatusDelivered})
	f.orders.Seed(&model.Order{Status: model.OrderStatusCancelled})

	active, err := f.uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected one active order, got %d", len(active))
	}
}
