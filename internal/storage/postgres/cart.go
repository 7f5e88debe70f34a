package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
)

// --- CartRepository implementation ---

func (r *cartRepository) Create(ctx context.Context, customerID *int64) (*model.Cart, error) {
	const query = `INSERT INTO carts (uuid, customer_id) VALUES ($1, $2) RETURNING id, created_at`
	c := model.Cart{UUID: uuid.New(), CustomerID: customerID}
	err := r.storage.pool.QueryRow(ctx, query, c.UUID, customerID).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cartRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*model.Cart, error) {
	const query = `SELECT id, uuid, customer_id, created_at FROM carts WHERE uuid=$1`
	return r.fetch(ctx, r.storage.pool.QueryRow(ctx, query, id))
}

func (r *cartRepository) GetByCustomer(ctx context.Context, customerID int64) (*model.Cart, error) {
	const query = `SELECT id, uuid, customer_id, created_at FROM carts WHERE customer_id=$1`
	return r.fetch(ctx, r.storage.pool.QueryRow(ctx, query, customerID))
}

func (r *cartRepository) fetch(ctx context.Context, row pgx.Row) (*model.Cart, error) {
	var c model.Cart
	err := row.Scan(&c.ID, &c.UUID, &c.CustomerID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrCartNotFound
		}
		return nil, err
	}
	items, err := r.loadItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return &c, nil
}

func (r *cartRepository) loadItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	const query = `SELECT id, uuid, cart_id, product_uuid, quantity
                   FROM cart_items WHERE cart_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ID, &it.UUID, &it.CartID, &it.ProductUUID, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) AddItem(ctx context.Context, cartID int64, productUUID uuid.UUID, quantity int) error {
	// Upsert: adding an already-present product bumps its quantity.
	const query = `INSERT INTO cart_items (uuid, cart_id, product_uuid, quantity)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (cart_id, product_uuid)
                   DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`
	_, err := r.storage.pool.Exec(ctx, query, uuid.New(), cartID, productUUID, quantity)
	return err
}

func (r *cartRepository) SetItemQuantity(ctx context.Context, cartID int64, productUUID uuid.UUID, quantity int) error {
	const query = `UPDATE cart_items SET quantity=$1 WHERE cart_id=$2 AND product_uuid=$3`
	tag, err := r.storage.pool.Exec(ctx, query, quantity, cartID, productUUID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProductNotInCart
	}
	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, cartID int64, productUUID uuid.UUID) error {
	const query = `DELETE FROM cart_items WHERE cart_id=$1 AND product_uuid=$2`
	tag, err := r.storage.pool.Exec(ctx, query, cartID, productUUID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProductNotInCart
	}
	return nil
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID int64) error {
	const query = `DELETE FROM cart_items WHERE cart_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, cartID)
	return err
}

// MergeInto folds the source cart's items into the target cart, summing
// quantities on overlap, then removes the source cart.
func (r *cartRepository) MergeInto(ctx context.Context, sourceID, targetID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const mergeQuery = `INSERT INTO cart_items (uuid, cart_id, product_uuid, quantity)
                            SELECT gen_random_uuid(), $2, product_uuid, quantity
                            FROM cart_items WHERE cart_id=$1
                            ON CONFLICT (cart_id, product_uuid)
                            DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`
		if _, err := tx.Exec(ctx, mergeQuery, sourceID, targetID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM carts WHERE id=$1`, sourceID); err != nil {
			return err
		}
		return nil
	})
}

// DeleteAbandoned removes anonymous carts created before the cutoff; their
// items go with them via the cascade.
func (r *cartRepository) DeleteAbandoned(ctx context.Context, before time.Time) (int64, error) {
	const query = `DELETE FROM carts WHERE customer_id IS NULL AND created_at < $1`
	tag, err := r.storage.pool.Exec(ctx, query, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
