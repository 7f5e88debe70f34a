package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qorikusi/backend/internal/domain/model"
)

// CartResponse is the raw cart projection: lines without pricing.
type CartResponse struct {
	UUID      uuid.UUID          `json:"uuid"`
	CreatedAt time.Time          `json:"createdAt"`
	Items     []CartItemResponse `json:"items"`
}

// CartItemResponse is one unpriced cart line.
type CartItemResponse struct {
	ProductUUID uuid.UUID `json:"productUuid"`
	Quantity    int       `json:"quantity"`
}

// NewCartResponse maps a cart onto its API projection.
func NewCartResponse(cart *model.Cart) CartResponse {
	resp := CartResponse{UUID: cart.UUID, CreatedAt: cart.CreatedAt, Items: []CartItemResponse{}}
	for _, item := range cart.Items {
		resp.Items = append(resp.Items, CartItemResponse{ProductUUID: item.ProductUUID, Quantity: item.Quantity})
	}
	return resp
}

// CartItemRequest adds or repins a product line.
type CartItemRequest struct {
	ProductUUID uuid.UUID `json:"productUuid" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required"`
}

// MergeCartRequest folds an anonymous cart into the caller's cart.
type MergeCartRequest struct {
	AnonymousCartUUID uuid.UUID `json:"anonymousCartUuid" binding:"required"`
}

// CartSnapshotResponse is the priced cart projection. The same shape is
// consumed by the orders service when it turns a cart into an order.
type CartSnapshotResponse struct {
	UUID  uuid.UUID                  `json:"uuid"`
	Items []CartSnapshotLineResponse `json:"items"`
	Total decimal.Decimal            `json:"total"`
}

// CartSnapshotLineResponse is one priced cart line.
type CartSnapshotLineResponse struct {
	ProductUUID uuid.UUID       `json:"productUuid"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ImageURL    string          `json:"imageUrl"`
}

// NewCartSnapshotResponse maps a snapshot onto its API projection.
func NewCartSnapshotResponse(s *model.CartSnapshot) CartSnapshotResponse {
	resp := CartSnapshotResponse{UUID: s.CartUUID, Items: []CartSnapshotLineResponse{}, Total: s.Total}
	for _, line := range s.Lines {
		resp.Items = append(resp.Items, CartSnapshotLineResponse{
			ProductUUID: line.ProductUUID,
			Category:    line.Category,
			Name:        line.Name,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal,
			ImageURL:    line.ImageURL,
		})
	}
	return resp
}
