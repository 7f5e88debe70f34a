package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qorikusi/backend/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage uses; mock pools implement
// it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL. All six services
// share one schema, as the original suite does; each service uses only its
// own repositories.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type customerRepository struct {
	storage *Storage
}

type adminRepository struct {
	storage *Storage
}

type addressRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

type receiptRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Admins() repository.AdminRepository {
	return &adminRepository{storage: s}
}

func (s *Storage) Addresses() repository.AddressRepository {
	return &addressRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (s *Storage) Receipts() repository.ReceiptRepository {
	return &receiptRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            loyalty_points INT NOT NULL DEFAULT 0,
            zodiac_sign TEXT NOT NULL DEFAULT '',
            moon_phase TEXT NOT NULL DEFAULT '',
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS admins (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            street TEXT NOT NULL,
            ubigeo_code TEXT NOT NULL DEFAULT '',
            department TEXT NOT NULL DEFAULT '',
            province TEXT NOT NULL DEFAULT '',
            district TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            name TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            category_id BIGINT NOT NULL REFERENCES categories(id),
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC(10,2) NOT NULL,
            stock INT NOT NULL DEFAULT 0,
            moon_energy TEXT NOT NULL DEFAULT '',
            image_url TEXT NOT NULL DEFAULT '',
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS carts (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            customer_id BIGINT REFERENCES customers(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cart_items (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            cart_id BIGINT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
            product_uuid UUID NOT NULL,
            quantity INT NOT NULL,
            UNIQUE (cart_id, product_uuid)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            order_code TEXT NOT NULL,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            status TEXT NOT NULL,
            shipping_type TEXT NOT NULL DEFAULT '',
            total NUMERIC(10,2) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_lines (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_uuid UUID NOT NULL,
            quantity INT NOT NULL,
            subtotal NUMERIC(10,2) NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            amount NUMERIC(10,2) NOT NULL,
            method TEXT NOT NULL,
            status TEXT NOT NULL,
            paid_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            operation_number TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS receipts (
            id SERIAL PRIMARY KEY,
            uuid UUID UNIQUE NOT NULL,
            payment_id BIGINT NOT NULL REFERENCES payments(id),
            kind TEXT NOT NULL,
            issued_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            total NUMERIC(10,2) NOT NULL,
            series TEXT NOT NULL,
            number TEXT NOT NULL,
            tax_id TEXT NOT NULL DEFAULT '',
            legal_name TEXT NOT NULL DEFAULT '',
            national_id TEXT NOT NULL DEFAULT '',
            holder_name TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE INDEX IF NOT EXISTS idx_addresses_customer ON addresses(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_carts_customer ON carts(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
