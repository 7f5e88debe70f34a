package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qorikusi/backend/internal/server/http/dto"
)

// CartHandler serves anonymous and customer carts.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// CreateAnonymous handles POST /carts.
func (h *CartHandler) CreateAnonymous(c *gin.Context) {
	cart, err := h.facade.CreateAnonymous(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCartResponse(cart))
}

// FindOrCreate handles GET /client/carts/me: the caller's cart, opened on
// first use.
func (h *CartHandler) FindOrCreate(c *gin.Context) {
	cart, err := h.facade.FindOrCreate(c.Request.Context(), CurrentUserUUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

// Snapshot handles GET /carts/:uuid: the priced projection.
func (h *CartHandler) Snapshot(c *gin.Context) {
	cartUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	snapshot, err := h.facade.Snapshot(c.Request.Context(), cartUUID, CurrentCaller(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartSnapshotResponse(snapshot))
}

// AddItem handles POST /carts/:uuid/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	cartUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	if err := h.facade.AddItem(c.Request.Context(), cartUUID, req.ProductUUID, req.Quantity, CurrentCaller(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetItemQuantity handles PUT /carts/:uuid/items/:productUuid.
func (h *CartHandler) SetItemQuantity(c *gin.Context) {
	cartUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	productUUID, ok := pathUUID(c, "productUuid")
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	if err := h.facade.SetItemQuantity(c.Request.Context(), cartUUID, productUUID, req.Quantity, CurrentCaller(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveItem handles DELETE /carts/:uuid/items/:productUuid.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	productUUID, ok := pathUUID(c, "productUuid")
	if !ok {
		return
	}
	if err := h.facade.RemoveItem(c.Request.Context(), cartUUID, productUUID, CurrentCaller(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /carts/:uuid/items.
func (h *CartHandler) Clear(c *gin.Context) {
	cartUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	if err := h.facade.Clear(c.Request.Context(), cartUUID, CurrentCaller(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// InternalSnapshot handles GET /internal/carts/:uuid for sibling services.
// No ownership check: the route is not exposed publicly.
func (h *CartHandler) InternalSnapshot(c *gin.Context) {
	cartUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	snapshot, err := h.facade.InternalSnapshot(c.Request.Context(), cartUUID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartSnapshotResponse(snapshot))
}

// InternalClear handles DELETE /internal/carts/:uuid/items for sibling
// services.
func (h *CartHandler) InternalClear(c *gin.Context) {
	cartUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	if err := h.facade.InternalClear(c.Request.Context(), cartUUID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Merge handles POST /client/carts/me/merge: folds an anonymous cart into
// the caller's cart at login.
func (h *CartHandler) Merge(c *gin.Context) {
	var req dto.MergeCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	cart, err := h.facade.Merge(c.Request.Context(), req.AnonymousCartUUID, CurrentUserUUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}
