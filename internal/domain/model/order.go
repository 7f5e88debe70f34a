package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "PendingPayment"
	OrderStatusPaid           OrderStatus = "Paid"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
	OrderStatusRejected       OrderStatus = "Rejected"
)

// TerminalOrderStatuses are excluded from the admin review listing.
var TerminalOrderStatuses = []OrderStatus{
	OrderStatusCancelled,
	OrderStatusRejected,
	OrderStatusDelivered,
}

var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusPendingPayment: {},
	OrderStatusPaid:           {},
	OrderStatusShipped:        {},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {},
	OrderStatusRejected:       {},
}

// orderTransitions is the legal move table for admin status updates.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment: {OrderStatusPaid, OrderStatusCancelled, OrderStatusRejected},
	OrderStatusPaid:           {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:        {OrderStatusDelivered},
}

// ParseOrderStatus validates a caller-supplied status string.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := orderStatuses[status]; !ok {
		return "", domainErrors.ErrInvalidStatus
	}
	return status, nil
}

// CanTransitionTo reports whether moving to next is a legal transition.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// Order is the purchase aggregate. Created atomically with its lines; the
// status is the only field mutated afterwards.
type Order struct {
	ID           int64
	UUID         uuid.UUID
	Code         string
	CustomerID   int64
	CustomerUUID uuid.UUID
	Status       OrderStatus
	ShippingType string
	Total        decimal.Decimal
	CreatedAt    time.Time
	Lines        []OrderLine
}

// OrderLine freezes one product's quantity and subtotal as captured at
// order-creation time. Immutable after creation.
type OrderLine struct {
	ID          int64
	UUID        uuid.UUID
	OrderID     int64
	ProductUUID uuid.UUID
	Quantity    int
	Subtotal    decimal.Decimal
}
