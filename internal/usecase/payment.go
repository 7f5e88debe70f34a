package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qorikusi/backend/internal/adapter/gateway"
	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
	"github.com/qorikusi/backend/internal/pkg/codes"
)

// PaymentUseCase collects payment for an order and issues the voucher.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	receipts repository.ReceiptRepository
	orders   repository.OrderRepository
	gw       gateway.Gateway
	gen      *codes.Generator
	logger   *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(
	payments repository.PaymentRepository,
	receipts repository.ReceiptRepository,
	orders repository.OrderRepository,
	gw gateway.Gateway,
	gen *codes.Generator,
	logger *slog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments: payments,
		receipts: receipts,
		orders:   orders,
		gw:       gw,
		gen:      gen,
		logger:   logger,
	}
}

// Process charges the amount the caller declared, not a re-derived order
// total. The payment row is written in Pending before the gateway is asked,
// then finalized to Completed or Failed. A completed payment is re-read from
// storage and gets its receipt issued in the same call; a declined one comes
// back Failed with no receipt and no error.
func (u *PaymentUseCase) Process(ctx context.Context, customerUUID, orderUUID uuid.UUID, amount decimal.Decimal, method model.PaymentMethod, receipt model.ReceiptRequest) (*model.Payment, *model.Receipt, error) {
	if err := validateReceiptRequest(receipt); err != nil {
		return nil, nil, err
	}
	if !amount.IsPositive() {
		return nil, nil, domainErrors.ErrInvalidAmount
	}

	order, err := u.orders.GetByUUID(ctx, orderUUID)
	if err != nil {
		return nil, nil, err
	}
	if order.CustomerUUID != customerUUID {
		return nil, nil, domainErrors.ErrOrderNotFound
	}
	if order.Status != model.OrderStatusPendingPayment {
		return nil, nil, domainErrors.ErrInvalidStatus
	}

	payment := model.Payment{
		OrderID:   order.ID,
		OrderUUID: order.UUID,
		Amount:    amount,
		Method:    method,
		Status:    model.PaymentStatusPending,
		PaidAt:    time.Now(),
	}
	if _, err := u.payments.Create(ctx, &payment); err != nil {
		return nil, nil, err
	}

	result, err := u.gw.Charge(ctx, amount, method)
	if err != nil {
		return nil, nil, err
	}

	if !result.Approved {
		if err := u.payments.Finalize(ctx, payment.ID, model.PaymentStatusFailed, ""); err != nil {
			return nil, nil, err
		}
		payment.Status = model.PaymentStatusFailed
		u.logger.Info("payment declined",
			slog.String("order", order.Code),
			slog.String("payment", payment.UUID.String()),
		)
		return &payment, nil, nil
	}

	if err := u.payments.Finalize(ctx, payment.ID, model.PaymentStatusCompleted, result.OperationNumber); err != nil {
		return nil, nil, err
	}

	// The voucher is issued against the persisted row, not the in-memory
	// struct; a payment that vanished in between surfaces as PaymentNotFound.
	settled, err := u.payments.GetByUUID(ctx, payment.UUID)
	if err != nil {
		return nil, nil, err
	}
	settled.Status = model.PaymentStatusCompleted
	settled.OperationNumber = result.OperationNumber

	voucher, err := u.issueReceipt(ctx, settled, amount, receipt)
	if err != nil {
		return nil, nil, err
	}
	return settled, voucher, nil
}

// Get returns one payment by identifier.
func (u *PaymentUseCase) Get(ctx context.Context, paymentUUID uuid.UUID) (*model.Payment, error) {
	return u.payments.GetByUUID(ctx, paymentUUID)
}

func (u *PaymentUseCase) issueReceipt(ctx context.Context, payment *model.Payment, total decimal.Decimal, req model.ReceiptRequest) (*model.Receipt, error) {
	voucher := model.Receipt{
		PaymentID:   payment.ID,
		PaymentUUID: payment.UUID,
		Kind:        req.Kind,
		IssuedAt:    time.Now(),
		Total:       total,
		Series:      u.gen.ReceiptSeries(),
		Number:      u.gen.ReceiptNumber(),
	}
	switch req.Kind {
	case model.ReceiptKindInvoice:
		voucher.TaxID = req.TaxID
		voucher.LegalName = req.LegalName
	case model.ReceiptKindSimplified:
		voucher.NationalID = req.NationalID
		voucher.HolderName = req.HolderName
	}
	return u.receipts.Create(ctx, &voucher)
}

func validateReceiptRequest(req model.ReceiptRequest) error {
	switch req.Kind {
	case model.ReceiptKindInvoice:
		if !ValidateRUC(req.TaxID) || strings.TrimSpace(req.LegalName) == "" {
			return domainErrors.ErrInvalidReceiptType
		}
	case model.ReceiptKindSimplified:
		if !ValidateDNI(req.NationalID) || strings.TrimSpace(req.HolderName) == "" {
			return domainErrors.ErrInvalidReceiptType
		}
	default:
		return domainErrors.ErrInvalidReceiptType
	}
	return nil
}
