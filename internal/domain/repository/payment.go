package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/qorikusi/backend/internal/domain/model"
)

// PaymentRepository describes persistence operations for payments.
// Create and Finalize are intentionally separate writes: a payment row in
// Pending state exists before settlement is attempted.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	Finalize(ctx context.Context, paymentID int64, status model.PaymentStatus, operationNumber string) error
	GetByUUID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
}

// ReceiptRepository describes persistence operations for receipts.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error)
}
