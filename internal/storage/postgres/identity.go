package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
)

const uniqueViolation = "23505"

// --- CustomerRepository implementation ---

func (r *customerRepository) Create(ctx context.Context, email, passwordHash string) (*model.Customer, error) {
	const query = `INSERT INTO customers (uuid, email, password_hash) VALUES ($1, $2, $3)
                   RETURNING id, registered_at`
	c := model.Customer{UUID: uuid.New(), Email: email, PasswordHash: passwordHash, Active: true}
	err := r.storage.pool.QueryRow(ctx, query, c.UUID, email, passwordHash).Scan(&c.ID, &c.RegisteredAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const query = `SELECT id, uuid, email, password_hash, first_name, last_name, phone,
                          registered_at, loyalty_points, zodiac_sign, moon_phase, active
                   FROM customers WHERE email=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *customerRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	const query = `SELECT id, uuid, email, password_hash, first_name, last_name, phone,
                          registered_at, loyalty_points, zodiac_sign, moon_phase, active
                   FROM customers WHERE uuid=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *customerRepository) Reactivate(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE customers SET password_hash=$1, registered_at=NOW(), active=TRUE WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) UpdateProfile(ctx context.Context, id int64, person model.Person, zodiacSign, moonPhase string) error {
	const query = `UPDATE customers
                   SET first_name=$1, last_name=$2, phone=$3, zodiac_sign=$4, moon_phase=$5
                   WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query, person.FirstName, person.LastName, person.Phone, zodiacSign, moonPhase, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE customers SET password_hash=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) scanOne(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.UUID, &c.Email, &c.PasswordHash,
		&c.Person.FirstName, &c.Person.LastName, &c.Person.Phone,
		&c.RegisteredAt, &c.LoyaltyPoints, &c.ZodiacSign, &c.MoonPhase, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// --- AdminRepository implementation ---

func (r *adminRepository) Create(ctx context.Context, username, passwordHash string) (*model.Admin, error) {
	const query = `INSERT INTO admins (uuid, username, password_hash) VALUES ($1, $2, $3) RETURNING id`
	a := model.Admin{UUID: uuid.New(), Username: username, PasswordHash: passwordHash, Active: true}
	err := r.storage.pool.QueryRow(ctx, query, a.UUID, username, passwordHash).Scan(&a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const query = `SELECT id, uuid, username, password_hash, first_name, last_name, phone, active
                   FROM admins WHERE username=$1`
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&a.ID, &a.UUID, &a.Username, &a.PasswordHash,
		&a.Person.FirstName, &a.Person.LastName, &a.Person.Phone, &a.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) Reactivate(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE admins SET password_hash=$1, active=TRUE WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- AddressRepository implementation ---

func (r *addressRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Address, error) {
	const query = `SELECT id, uuid, customer_id, street, ubigeo_code, department, province, district
                   FROM addresses WHERE customer_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.UUID, &a.CustomerID, &a.Street, &a.UbigeoCode, &a.Department, &a.Province, &a.District); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *addressRepository) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	const query = `INSERT INTO addresses (uuid, customer_id, street, ubigeo_code, department, province, district)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	address.UUID = uuid.New()
	err := r.storage.pool.QueryRow(ctx, query, address.UUID, address.CustomerID, address.Street,
		address.UbigeoCode, address.Department, address.Province, address.District).Scan(&address.ID)
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (r *addressRepository) Update(ctx context.Context, customerID int64, address *model.Address) (*model.Address, error) {
	const query = `UPDATE addresses
                   SET street=$1, ubigeo_code=$2, department=$3, province=$4, district=$5
                   WHERE uuid=$6 AND customer_id=$7 RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, address.Street, address.UbigeoCode, address.Department,
		address.Province, address.District, address.UUID, customerID).Scan(&address.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	address.CustomerID = customerID
	return address, nil
}

func (r *addressRepository) Delete(ctx context.Context, customerID int64, id uuid.UUID) error {
	const query = `DELETE FROM addresses WHERE uuid=$1 AND customer_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
