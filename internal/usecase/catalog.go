package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
)

// CatalogUseCase covers catalog management and storefront browsing.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// CreateProduct registers a new catalog product under an existing category.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	product, err := u.buildProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	return u.products.Create(ctx, product)
}

// UpdateProduct rewrites an existing product.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, productUUID uuid.UUID, input model.ProductInput) (*model.Product, error) {
	product, err := u.buildProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	product.UUID = productUUID
	return u.products.Update(ctx, product)
}

func (u *CatalogUseCase) buildProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if strings.TrimSpace(input.Name) == "" || input.Price.IsNegative() || input.Stock < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	category, err := u.categories.GetByUUID(ctx, input.CategoryUUID)
	if err != nil {
		return nil, err
	}
	return &model.Product{
		CategoryID:  category.ID,
		Category:    category.Name,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		MoonEnergy:  input.MoonEnergy,
		ImageURL:    input.ImageURL,
		Active:      input.Active,
	}, nil
}

// DeleteProduct performs a soft delete: the product is deactivated, keeping
// history for orders that already reference it.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, productUUID uuid.UUID) error {
	return u.products.Deactivate(ctx, productUUID)
}

// Product returns one product regardless of its active flag. Admin and
// service-to-service view.
func (u *CatalogUseCase) Product(ctx context.Context, productUUID uuid.UUID) (*model.Product, error) {
	return u.products.GetByUUID(ctx, productUUID)
}

// ActiveProduct returns one product for the storefront. Deactivated products
// are indistinguishable from missing ones.
func (u *CatalogUseCase) ActiveProduct(ctx context.Context, productUUID uuid.UUID) (*model.Product, error) {
	return u.products.GetActiveByUUID(ctx, productUUID)
}

// Products lists products for the back office, unfiltered by default.
func (u *CatalogUseCase) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return u.products.List(ctx, filter)
}

// Catalog lists active products for the storefront, optionally narrowed to
// one category.
func (u *CatalogUseCase) Catalog(ctx context.Context, category string, limit, offset int) ([]model.Product, error) {
	active := true
	return u.products.List(ctx, repository.ProductFilter{
		Active:   &active,
		Category: category,
		Limit:    limit,
		Offset:   offset,
	})
}

// Categories lists all catalog categories.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}
