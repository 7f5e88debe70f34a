package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
)

// ReceiptRequest carries the voucher details the buyer supplies at checkout.
// Which fields matter depends on Kind.
type ReceiptRequest struct {
	Kind ReceiptKind

	// Invoice.
	TaxID     string
	LegalName string

	// Simplified receipt.
	NationalID string
	HolderName string
}

// ReceiptKind discriminates the two receipt variants.
type ReceiptKind string

const (
	// ReceiptKindInvoice is a tax invoice issued to a business (Factura).
	ReceiptKindInvoice ReceiptKind = "Invoice"
	// ReceiptKindSimplified is a simplified consumer receipt (Boleta).
	ReceiptKindSimplified ReceiptKind = "SimplifiedReceipt"
)

// ParseReceiptKind validates a caller-supplied receipt type string.
func ParseReceiptKind(s string) (ReceiptKind, error) {
	switch ReceiptKind(s) {
	case ReceiptKindInvoice, ReceiptKindSimplified:
		return ReceiptKind(s), nil
	}
	return "", domainErrors.ErrInvalidReceiptType
}

// Receipt is a tagged union over the two voucher variants. Only the fields
// of the active Kind are populated; the rest stay empty and are omitted from
// serialization. Immutable once created.
type Receipt struct {
	ID          int64
	UUID        uuid.UUID
	PaymentID   int64
	PaymentUUID uuid.UUID
	Kind        ReceiptKind
	IssuedAt    time.Time
	Total       decimal.Decimal
	Series      string
	Number      string

	// Invoice variant.
	TaxID     string
	LegalName string

	// Simplified variant.
	NationalID string
	HolderName string
}
