package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
	"github.com/qorikusi/backend/internal/server/http/dto"
)

// CatalogHandler serves catalog management and storefront browsing.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// CreateProduct handles POST /admin/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), productInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// UpdateProduct handles PUT /admin/products/:uuid.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	productUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), productUUID, productInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// DeleteProduct handles DELETE /admin/products/:uuid. Soft delete.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	productUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), productUUID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AdminProducts handles GET /admin/products.
func (h *CatalogHandler) AdminProducts(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context(), repository.ProductFilter{
		Category: c.Query("category"),
		Limit:    queryInt(c, "limit"),
		Offset:   queryInt(c, "offset"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productList(products))
}

// Catalog handles GET /catalog. Only active products.
func (h *CatalogHandler) Catalog(c *gin.Context) {
	products, err := h.facade.Catalog(c.Request.Context(), c.Query("category"), queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productList(products))
}

// Product handles GET /admin/products/:uuid and GET /internal/products/:uuid.
// Deactivated products stay visible here.
func (h *CatalogHandler) Product(c *gin.Context) {
	productUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), productUUID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// CatalogProduct handles GET /catalog/:uuid. Active products only.
func (h *CatalogHandler) CatalogProduct(c *gin.Context) {
	productUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	product, err := h.facade.ActiveProduct(c.Request.Context(), productUUID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// Categories handles GET /catalog/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, dto.NewCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func productInput(req dto.ProductRequest) model.ProductInput {
	return model.ProductInput{
		CategoryUUID: req.CategoryUUID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		MoonEnergy:   req.MoonEnergy,
		ImageURL:     req.ImageURL,
		Active:       req.Active,
	}
}

func productList(products []model.Product) []dto.ProductResponse {
	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, dto.NewProductResponse(&products[i]))
	}
	return resp
}

func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
