package catalogclient

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

// Client exposes read operations against the product service.
type Client interface {
	Product(ctx context.Context, productUUID uuid.UUID) (*model.Product, error)
}

// HTTPClient implements Client via the product service REST API.
type HTTPClient struct {
	rest   *resty.Client
	logger *slog.Logger
}

// productResponse mirrors the product service internal payload.
type productResponse struct {
	UUID        uuid.UUID `json:"uuid"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	MoonEnergy  string    `json:"moonEnergy"`
	ImageURL    string    `json:"imageUrl"`
	Active      bool      `json:"active"`
}

// NewHTTPClient creates an HTTP catalog client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse product service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("product service url must be absolute")
	}
	rest := resty.New().
		SetBaseURL(parsed.String()).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")
	return &HTTPClient{rest: rest, logger: logger}, nil
}

// Product fetches one product, active or not.
func (c *HTTPClient) Product(ctx context.Context, productUUID uuid.UUID) (*model.Product, error) {
	var data productResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&data).
		SetPathParam("uuid", productUUID.String()).
		Get("/internal/products/{uuid}")
	if err != nil {
		c.logger.Error("product service unreachable", slog.String("error", err.Error()))
		return nil, domainErrors.ErrUpstreamUnavailable
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		price, err := decimal.NewFromString(data.Price)
		if err != nil {
			return nil, fmt.Errorf("parse product price: %w", err)
		}
		return &model.Product{
			UUID:        data.UUID,
			Category:    data.Category,
			Name:        data.Name,
			Description: data.Description,
			Price:       price,
			Stock:       data.Stock,
			MoonEnergy:  data.MoonEnergy,
			ImageURL:    data.ImageURL,
			Active:      data.Active,
		}, nil
	case http.StatusNotFound:
		return nil, domainErrors.ErrProductNotFound
	default:
		c.logger.Error("product service request failed",
			slog.Int("status", resp.StatusCode()), slog.String("body", string(resp.Body())))
		return nil, domainErrors.ErrUpstreamUnavailable
	}
}
