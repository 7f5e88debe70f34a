package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/server/http/dto"
)

// OrderHandler serves order creation and lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /client/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	order, err := h.facade.Create(c.Request.Context(), CurrentUserUUID(c), req.CartUUID, req.ShippingType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// List handles GET /client/orders: the caller's purchase history.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.ListByCustomer(c.Request.Context(), CurrentUserUUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderList(orders))
}

// Get handles GET /client/orders/:uuid. Callers only see their own orders.
func (h *OrderHandler) Get(c *gin.Context) {
	orderUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	owner := CurrentUserUUID(c)
	order, err := h.facade.Get(c.Request.Context(), orderUUID, &owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// AdminList handles GET /admin/orders: in-flight orders awaiting action.
func (h *OrderHandler) AdminList(c *gin.Context) {
	orders, err := h.facade.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderList(orders))
}

// AdminGet handles GET /admin/orders/:uuid.
func (h *OrderHandler) AdminGet(c *gin.Context) {
	orderUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	order, err := h.facade.Get(c.Request.Context(), orderUUID, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// UpdateStatus handles PUT /admin/orders/:uuid/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	status, err := model.ParseOrderStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.facade.UpdateStatus(c.Request.Context(), orderUUID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

func orderList(orders []model.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, dto.NewOrderResponse(&orders[i]))
	}
	return resp
}
