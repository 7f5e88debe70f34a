package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
)

// --- PaymentRepository implementation ---

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	const query = `INSERT INTO payments (uuid, order_id, amount, method, status, paid_at, operation_number)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	payment.UUID = uuid.New()
	err := r.storage.pool.QueryRow(ctx, query, payment.UUID, payment.OrderID, payment.Amount,
		payment.Method, payment.Status, payment.PaidAt, payment.OperationNumber).Scan(&payment.ID)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepository) Finalize(ctx context.Context, paymentID int64, status model.PaymentStatus, operationNumber string) error {
	const query = `UPDATE payments SET status=$1, operation_number=$2 WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, status, operationNumber, paymentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrPaymentNotFound
	}
	return nil
}

func (r *paymentRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	const query = `SELECT p.id, p.uuid, p.order_id, o.uuid, p.amount, p.method, p.status,
                          p.paid_at, p.operation_number
                   FROM payments p JOIN orders o ON o.id = p.order_id
                   WHERE p.uuid=$1`
	var p model.Payment
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.UUID, &p.OrderID, &p.OrderUUID,
		&p.Amount, &p.Method, &p.Status, &p.PaidAt, &p.OperationNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

// --- ReceiptRepository implementation ---

func (r *receiptRepository) Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error) {
	const query = `INSERT INTO receipts (uuid, payment_id, kind, issued_at, total, series, number,
                                         tax_id, legal_name, national_id, holder_name)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	receipt.UUID = uuid.New()
	err := r.storage.pool.QueryRow(ctx, query, receipt.UUID, receipt.PaymentID, receipt.Kind,
		receipt.IssuedAt, receipt.Total, receipt.Series, receipt.Number,
		receipt.TaxID, receipt.LegalName, receipt.NationalID, receipt.HolderName).Scan(&receipt.ID)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}
