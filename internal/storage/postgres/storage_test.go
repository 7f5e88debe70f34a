package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func TestCustomerRepositoryCreateDuplicateEmail(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(pgxmockv3.AnyArg(), "luna@qorikusi.pe", "hash").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	_, err := storage.Customers().Create(context.Background(), "luna@qorikusi.pe", "hash")
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerRepositoryGetByEmail(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	id := uuid.New()
	registered := time.Now()
	rows := pgxmockv3.NewRows([]string{
		"id", "uuid", "email", "password_hash", "first_name", "last_name", "phone",
		"registered_at", "loyalty_points", "zodiac_sign", "moon_phase", "active",
	}).AddRow(int64(7), id, "luna@qorikusi.pe", "hash", "Luna", "Quispe", "999111222",
		registered, 10, "Scorpio", "WaxingCrescent", true)
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE email").
		WithArgs("luna@qorikusi.pe").
		WillReturnRows(rows)

	customer, err := storage.Customers().GetByEmail(context.Background(), "luna@qorikusi.pe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.UUID != id || customer.Person.FirstName != "Luna" || customer.LoyaltyPoints != 10 {
		t.Fatalf("unexpected customer: %+v", customer)
	}
}

func TestCustomerRepositoryGetByEmailNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE email").
		WithArgs("missing@qorikusi.pe").
		WillReturnError(pgx.ErrNoRows)

	_, err := storage.Customers().GetByEmail(context.Background(), "missing@qorikusi.pe")
	if !errors.Is(err, domainErrors.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestProductRepositoryDeactivateNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	productID := uuid.New()
	mock.ExpectExec("UPDATE products SET active=FALSE").
		WithArgs(productID).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Products().Deactivate(context.Background(), productID)
	if !errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartRepositoryDeleteAbandoned(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	cutoff := time.Now().Add(-7 * 24 * time.Hour)
	mock.ExpectExec("DELETE FROM carts WHERE customer_id IS NULL").
		WithArgs(cutoff).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 3))

	removed, err := storage.Carts().DeleteAbandoned(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed carts, got %d", removed)
	}
}

func TestCartRepositorySetItemQuantityMissingProduct(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	productID := uuid.New()
	mock.ExpectExec("UPDATE cart_items SET quantity").
		WithArgs(5, int64(1), productID).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Carts().SetItemQuantity(context.Background(), 1, productID, 5)
	if !errors.Is(err, domainErrors.ErrProductNotInCart) {
		t.Fatalf("expected ErrProductNotInCart, got %v", err)
	}
}

func TestOrderRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	productID := uuid.New()
	order := &model.Order{
		Code:       "QRK-20250101-120000-1234",
		CustomerID: 7,
		Status:     model.OrderStatusPendingPayment,
		Total:      decimal.RequireFromString("20.00"),
		Lines: []model.OrderLine{
			{ProductUUID: productID, Quantity: 2, Subtotal: decimal.RequireFromString("20.00")},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products SET stock = stock -").
		WithArgs(2, productID).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(pgxmockv3.AnyArg(), order.Code, order.CustomerID, order.Status, order.ShippingType, order.Total).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(42), time.Now()))
	mock.ExpectQuery("INSERT INTO order_lines").
		WithArgs(pgxmockv3.AnyArg(), int64(42), productID, 2, order.Lines[0].Subtotal).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(100)))
	mock.ExpectCommit()

	created, err := storage.Orders().Create(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 42 || created.Lines[0].OrderID != 42 {
		t.Fatalf("unexpected order: %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryCreateInsufficientStock(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	productID := uuid.New()
	order := &model.Order{
		CustomerID: 7,
		Status:     model.OrderStatusPendingPayment,
		Total:      decimal.RequireFromString("10.00"),
		Lines: []model.OrderLine{
			{ProductUUID: productID, Quantity: 99, Subtotal: decimal.RequireFromString("10.00")},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products SET stock = stock -").
		WithArgs(99, productID).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	_, err := storage.Orders().Create(context.Background(), order)
	if !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryUpdateStatusNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(model.OrderStatusPaid, int64(42)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Orders().UpdateStatus(context.Background(), 42, model.OrderStatusPaid)
	if !errors.Is(err, domainErrors.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestPaymentRepositoryFinalizeNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE payments SET status").
		WithArgs(model.PaymentStatusCompleted, "00001234", int64(5)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Payments().Finalize(context.Background(), 5, model.PaymentStatusCompleted, "00001234")
	if !errors.Is(err, domainErrors.ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("boom")
	err := storage.WithinTransaction(context.Background(), func(pgx.Tx) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
