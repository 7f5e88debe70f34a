package cartclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
)

// Client exposes operations to read a cart from the cart service.
type Client interface {
	Snapshot(ctx context.Context, cartUUID uuid.UUID) (*model.CartSnapshot, error)
	Clear(ctx context.Context, cartUUID uuid.UUID) error
}

// HTTPClient implements Client via the cart service REST API.
type HTTPClient struct {
	rest   *resty.Client
	logger *slog.Logger
}

// snapshotResponse mirrors the cart service snapshot payload.
type snapshotResponse struct {
	CartUUID uuid.UUID      `json:"uuid"`
	Lines    []snapshotLine `json:"items"`
	Total    string         `json:"total"`
}

type snapshotLine struct {
	ProductUUID uuid.UUID `json:"productUuid"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	UnitPrice   string    `json:"unitPrice"`
	Quantity    int       `json:"quantity"`
	Subtotal    string    `json:"subtotal"`
	ImageURL    string    `json:"imageUrl"`
}

// NewHTTPClient creates an HTTP cart client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse cart service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("cart service url must be absolute")
	}
	rest := resty.New().
		SetBaseURL(parsed.String()).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")
	return &HTTPClient{rest: rest, logger: logger}, nil
}

// Snapshot fetches the priced projection of a cart.
func (c *HTTPClient) Snapshot(ctx context.Context, cartUUID uuid.UUID) (*model.CartSnapshot, error) {
	var data snapshotResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&data).
		SetPathParam("uuid", cartUUID.String()).
		Get("/internal/carts/{uuid}")
	if err != nil {
		c.logger.Error("cart service unreachable", slog.String("error", err.Error()))
		return nil, domainErrors.ErrUpstreamUnavailable
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return toSnapshot(&data)
	case http.StatusNotFound:
		return nil, domainErrors.ErrCartNotFound
	default:
		c.logger.Error("cart service request failed",
			slog.Int("status", resp.StatusCode()), slog.String("body", string(resp.Body())))
		return nil, domainErrors.ErrUpstreamUnavailable
	}
}

// Clear empties the cart once its contents are turned into an order.
func (c *HTTPClient) Clear(ctx context.Context, cartUUID uuid.UUID) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("uuid", cartUUID.String()).
		Delete("/internal/carts/{uuid}/items")
	if err != nil {
		c.logger.Error("cart service unreachable", slog.String("error", err.Error()))
		return domainErrors.ErrUpstreamUnavailable
	}

	switch resp.StatusCode() {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound:
		return domainErrors.ErrCartNotFound
	default:
		c.logger.Error("cart service request failed",
			slog.Int("status", resp.StatusCode()), slog.String("body", string(resp.Body())))
		return domainErrors.ErrUpstreamUnavailable
	}
}

func toSnapshot(data *snapshotResponse) (*model.CartSnapshot, error) {
	total, err := decimal.NewFromString(data.Total)
	if err != nil {
		return nil, fmt.Errorf("parse cart total: %w", err)
	}
	snapshot := model.CartSnapshot{CartUUID: data.CartUUID, Total: total}
	for _, line := range data.Lines {
		unitPrice, err := decimal.NewFromString(line.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("parse line price: %w", err)
		}
		subtotal, err := decimal.NewFromString(line.Subtotal)
		if err != nil {
			return nil, fmt.Errorf("parse line subtotal: %w", err)
		}
		snapshot.Lines = append(snapshot.Lines, model.CartSnapshotLine{
			ProductUUID: line.ProductUUID,
			Category:    line.Category,
			Name:        line.Name,
			UnitPrice:   unitPrice,
			Quantity:    line.Quantity,
			Subtotal:    subtotal,
			ImageURL:    line.ImageURL,
		})
	}
	return &snapshot, nil
}
