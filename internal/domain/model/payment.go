package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
)

// PaymentStatus describes a payment's settlement state.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// PaymentMethod enumerates supported collection channels.
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "Card"
	PaymentMethodWallet   PaymentMethod = "Wallet"
	PaymentMethodTransfer PaymentMethod = "Transfer"
)

// ParsePaymentMethod validates a caller-supplied method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodCard, PaymentMethodWallet, PaymentMethodTransfer:
		return PaymentMethod(s), nil
	}
	return "", domainErrors.ErrInvalidPaymentMethod
}

// Payment records one settlement attempt against an order. Created Pending,
// then moved exactly once to Completed or Failed.
type Payment struct {
	ID              int64
	UUID            uuid.UUID
	OrderID         int64
	OrderUUID       uuid.UUID
	Amount          decimal.Decimal
	Method          PaymentMethod
	Status          PaymentStatus
	PaidAt          time.Time
	OperationNumber string
}
