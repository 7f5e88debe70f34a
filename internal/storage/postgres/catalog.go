package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
)

const productColumns = `p.id, p.uuid, p.category_id, c.name, p.name, p.description,
                        p.price, p.stock, p.moon_energy, p.image_url, p.active`

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (uuid, category_id, name, description, price, stock, moon_energy, image_url, active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	product.UUID = uuid.New()
	err := r.storage.pool.QueryRow(ctx, query, product.UUID, product.CategoryID, product.Name,
		product.Description, product.Price, product.Stock, product.MoonEnergy, product.ImageURL, product.Active).
		Scan(&product.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `UPDATE products
                   SET category_id=$1, name=$2, description=$3, price=$4, stock=$5,
                       moon_energy=$6, image_url=$7, active=$8
                   WHERE uuid=$9 RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, product.CategoryID, product.Name, product.Description,
		product.Price, product.Stock, product.MoonEnergy, product.ImageURL, product.Active, product.UUID).
		Scan(&product.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE products SET active=FALSE WHERE uuid=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `SELECT ` + productColumns + `
              FROM products p JOIN categories c ON c.id = p.category_id
              WHERE p.uuid=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) GetActiveByUUID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `SELECT ` + productColumns + `
              FROM products p JOIN categories c ON c.id = p.category_id
              WHERE p.uuid=$1 AND p.active`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, fmt.Sprintf("p.active=$%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("c.name=$%d", len(args)))
	}
	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON c.id = p.category_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.id"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *productRepository) FindByUUIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + `
              FROM products p JOIN categories c ON c.id = p.category_id
              WHERE p.uuid = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.UUID, &p.CategoryID, &p.Category, &p.Name, &p.Description,
		&p.Price, &p.Stock, &p.MoonEnergy, &p.ImageURL, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.UUID, &p.CategoryID, &p.Category, &p.Name, &p.Description,
			&p.Price, &p.Stock, &p.MoonEnergy, &p.ImageURL, &p.Active); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, uuid, name, description FROM categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.UUID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	const query = `SELECT id, uuid, name, description FROM categories WHERE uuid=$1`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.UUID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
