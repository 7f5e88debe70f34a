package catalogclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestProductSuccess(t *testing.T) {
	productUUID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/internal/products/"+productUUID.String() {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
            "uuid": "` + productUUID.String() + `",
            "category": "Crystals",
            "name": "Moon Quartz",
            "description": "Charged under a full moon",
            "price": "10.00",
            "stock": 12,
            "moonEnergy": "High",
            "imageUrl": "https://cdn.qorikusi.pe/quartz.png",
            "active": true
        }`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	product, err := client.Product(context.Background(), productUUID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.UUID != productUUID || product.Name != "Moon Quartz" || product.Stock != 12 {
		t.Fatalf("unexpected product: %+v", product)
	}
	if product.Price.StringFixed(2) != "10.00" {
		t.Fatalf("unexpected price: %s", product.Price)
	}
	if !product.Active {
		t.Fatal("expected active product")
	}
}

func TestProductNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Product(context.Background(), uuid.New())
	if !errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Product(context.Background(), uuid.New())
	if !errors.Is(err, domainErrors.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
