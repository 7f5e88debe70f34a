package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qorikusi/backend/internal/domain/model"
)

// CreateOrderRequest turns the caller's cart into an order.
type CreateOrderRequest struct {
	CartUUID     uuid.UUID `json:"cartUuid" binding:"required"`
	ShippingType string    `json:"shippingType"`
}

// OrderResponse is the purchase projection.
type OrderResponse struct {
	UUID         uuid.UUID           `json:"uuid"`
	Code         string              `json:"code"`
	Status       string              `json:"status"`
	ShippingType string              `json:"shippingType"`
	Total        decimal.Decimal     `json:"total"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []OrderLineResponse `json:"items"`
}

// OrderLineResponse is one frozen purchase line.
type OrderLineResponse struct {
	ProductUUID uuid.UUID       `json:"productUuid"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// NewOrderResponse maps an order onto its API projection.
func NewOrderResponse(o *model.Order) OrderResponse {
	resp := OrderResponse{
		UUID:         o.UUID,
		Code:         o.Code,
		Status:       string(o.Status),
		ShippingType: o.ShippingType,
		Total:        o.Total,
		CreatedAt:    o.CreatedAt,
		Items:        []OrderLineResponse{},
	}
	for _, line := range o.Lines {
		resp.Items = append(resp.Items, OrderLineResponse{
			ProductUUID: line.ProductUUID,
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal,
		})
	}
	return resp
}

// UpdateOrderStatusRequest moves an order along its lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
