package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
)

const orderColumns = `o.id, o.uuid, o.order_code, o.customer_id, c.uuid, o.status,
                      o.shipping_type, o.total, o.created_at`

// Create persists the order, its lines, and the stock reservation in one
// transaction. Stock is reserved with a conditional decrement so concurrent
// orders can never drive stock below zero; a miss rolls everything back with
// ErrInsufficientStock.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	order.UUID = uuid.New()
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const reserveQuery = `UPDATE products SET stock = stock - $1
                              WHERE uuid=$2 AND active AND stock >= $1`
		for _, line := range order.Lines {
			tag, err := tx.Exec(ctx, reserveQuery, line.Quantity, line.ProductUUID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrInsufficientStock
			}
		}

		const orderQuery = `INSERT INTO orders (uuid, order_code, customer_id, status, shipping_type, total)
                            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
		err := tx.QueryRow(ctx, orderQuery, order.UUID, order.Code, order.CustomerID,
			order.Status, order.ShippingType, order.Total).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		const lineQuery = `INSERT INTO order_lines (uuid, order_id, product_uuid, quantity, subtotal)
                           VALUES ($1, $2, $3, $4, $5) RETURNING id`
		for i := range order.Lines {
			line := &order.Lines[i]
			line.UUID = uuid.New()
			line.OrderID = order.ID
			if err := tx.QueryRow(ctx, lineQuery, line.UUID, order.ID, line.ProductUUID,
				line.Quantity, line.Subtotal).Scan(&line.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o JOIN customers c ON c.id = o.customer_id
              WHERE o.uuid=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.UUID, &o.Code, &o.CustomerID,
		&o.CustomerUUID, &o.Status, &o.ShippingType, &o.Total, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	if err := r.attachLines(ctx, []*model.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o JOIN customers c ON c.id = o.customer_id
              WHERE o.customer_id=$1 ORDER BY o.created_at DESC`
	return r.list(ctx, query, customerID)
}

// ListActive returns orders still in flight, excluding terminal statuses.
func (r *orderRepository) ListActive(ctx context.Context) ([]model.Order, error) {
	statuses := make([]string, 0, len(model.TerminalOrderStatuses))
	for _, s := range model.TerminalOrderStatuses {
		statuses = append(statuses, string(s))
	}
	query := `SELECT ` + orderColumns + `
              FROM orders o JOIN customers c ON c.id = o.customer_id
              WHERE o.status != ALL($1) ORDER BY o.created_at`
	return r.list(ctx, query, statuses)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UUID, &o.Code, &o.CustomerID, &o.CustomerUUID,
			&o.Status, &o.ShippingType, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*model.Order, len(result))
	for i := range result {
		refs[i] = &result[i]
	}
	if err := r.attachLines(ctx, refs); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) attachLines(ctx context.Context, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]*model.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	const query = `SELECT id, uuid, order_id, product_uuid, quantity, subtotal
                   FROM order_lines WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line model.OrderLine
		if err := rows.Scan(&line.ID, &line.UUID, &line.OrderID, &line.ProductUUID,
			&line.Quantity, &line.Subtotal); err != nil {
			return err
		}
		if o := byID[line.OrderID]; o != nil {
			o.Lines = append(o.Lines, line)
		}
	}
	return rows.Err()
}
