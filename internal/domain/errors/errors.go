package errors

import "errors"

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrCartNotFound         = errors.New("cart not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNotInCart     = errors.New("product not in cart")
	ErrOrderNotFound        = errors.New("order not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccessDenied         = errors.New("access denied")
	ErrUpstreamUnavailable  = errors.New("upstream service unavailable")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidTransition    = errors.New("illegal status transition")
	ErrInvalidReceiptType   = errors.New("invalid receipt type")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
