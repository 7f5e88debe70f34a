package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qorikusi/backend/internal/domain/model"
)

// PaymentRequest charges an order and states which voucher to issue.
type PaymentRequest struct {
	OrderUUID uuid.UUID       `json:"orderUuid" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method" binding:"required"`
	Receipt   ReceiptRequest  `json:"receipt" binding:"required"`
}

// ReceiptRequest names the voucher variant and its holder details.
type ReceiptRequest struct {
	Kind       string `json:"kind" binding:"required"`
	TaxID      string `json:"taxId"`
	LegalName  string `json:"legalName"`
	NationalID string `json:"nationalId"`
	HolderName string `json:"holderName"`
}

// PaymentResponse is the settlement projection. Receipt is present only
// when the charge completed.
type PaymentResponse struct {
	UUID            uuid.UUID        `json:"uuid"`
	OrderUUID       uuid.UUID        `json:"orderUuid"`
	Amount          decimal.Decimal  `json:"amount"`
	Method          string           `json:"method"`
	Status          string           `json:"status"`
	PaidAt          time.Time        `json:"paidAt"`
	OperationNumber string           `json:"operationNumber,omitempty"`
	Receipt         *ReceiptResponse `json:"receipt,omitempty"`
}

// ReceiptResponse is the voucher projection. Variant fields outside the
// active kind are omitted.
type ReceiptResponse struct {
	UUID       uuid.UUID       `json:"uuid"`
	Kind       string          `json:"kind"`
	IssuedAt   time.Time       `json:"issuedAt"`
	Total      decimal.Decimal `json:"total"`
	Series     string          `json:"series"`
	Number     string          `json:"number"`
	TaxID      string          `json:"taxId,omitempty"`
	LegalName  string          `json:"legalName,omitempty"`
	NationalID string          `json:"nationalId,omitempty"`
	HolderName string          `json:"holderName,omitempty"`
}

// NewPaymentResponse maps a payment and its optional voucher onto the API
// projection.
func NewPaymentResponse(p *model.Payment, r *model.Receipt) PaymentResponse {
	resp := PaymentResponse{
		UUID:            p.UUID,
		OrderUUID:       p.OrderUUID,
		Amount:          p.Amount,
		Method:          string(p.Method),
		Status:          string(p.Status),
		PaidAt:          p.PaidAt,
		OperationNumber: p.OperationNumber,
	}
	if r != nil {
		resp.Receipt = &ReceiptResponse{
			UUID:       r.UUID,
			Kind:       string(r.Kind),
			IssuedAt:   r.IssuedAt,
			Total:      r.Total,
			Series:     r.Series,
			Number:     r.Number,
			TaxID:      r.TaxID,
			LegalName:  r.LegalName,
			NationalID: r.NationalID,
			HolderName: r.HolderName,
		}
	}
	return resp
}
