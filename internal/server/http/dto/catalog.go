package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qorikusi/backend/internal/domain/model"
)

// ProductRequest carries the admin-editable product fields.
type ProductRequest struct {
	CategoryUUID uuid.UUID       `json:"categoryUuid" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Stock        int             `json:"stock"`
	MoonEnergy   string          `json:"moonEnergy"`
	ImageURL     string          `json:"imageUrl"`
	Active       bool            `json:"active"`
}

// ProductResponse is the catalog product projection.
type ProductResponse struct {
	UUID        uuid.UUID       `json:"uuid"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MoonEnergy  string          `json:"moonEnergy"`
	ImageURL    string          `json:"imageUrl"`
	Active      bool            `json:"active"`
}

// NewProductResponse maps a product onto its API projection.
func NewProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		UUID:        p.UUID,
		Category:    p.Category,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		MoonEnergy:  p.MoonEnergy,
		ImageURL:    p.ImageURL,
		Active:      p.Active,
	}
}

// CategoryResponse is the category projection.
type CategoryResponse struct {
	UUID        uuid.UUID `json:"uuid"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// NewCategoryResponse maps a category onto its API projection.
func NewCategoryResponse(c *model.Category) CategoryResponse {
	return CategoryResponse{UUID: c.UUID, Name: c.Name, Description: c.Description}
}
