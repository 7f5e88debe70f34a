package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/server/http/dto"
)

// CustomerHandler serves the storefront account profile and its addresses.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler creates CustomerHandler instance.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Profile handles GET /client/customers/me.
func (h *CustomerHandler) Profile(c *gin.Context) {
	customer, err := h.facade.Profile(c.Request.Context(), CurrentUserUUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}

// UpdateProfile handles PUT /client/customers/me.
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	person := model.Person{FirstName: req.FirstName, LastName: req.LastName, Phone: req.Phone}
	customer, err := h.facade.UpdateProfile(c.Request.Context(), CurrentUserUUID(c), person, req.ZodiacSign, req.MoonPhase)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}

// Addresses handles GET /client/customers/me/addresses.
func (h *CustomerHandler) Addresses(c *gin.Context) {
	addresses, err := h.facade.Addresses(c.Request.Context(), CurrentUserUUID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.AddressResponse, 0, len(addresses))
	for i := range addresses {
		resp = append(resp, dto.NewAddressResponse(&addresses[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// AddAddress handles POST /client/customers/me/addresses.
func (h *CustomerHandler) AddAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	address, err := h.facade.AddAddress(c.Request.Context(), CurrentUserUUID(c), addressFromRequest(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAddressResponse(address))
}

// UpdateAddress handles PUT /client/customers/me/addresses/:uuid.
func (h *CustomerHandler) UpdateAddress(c *gin.Context) {
	addressUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	address := addressFromRequest(req)
	address.UUID = addressUUID
	updated, err := h.facade.UpdateAddress(c.Request.Context(), CurrentUserUUID(c), address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAddressResponse(updated))
}

// DeleteAddress handles DELETE /client/customers/me/addresses/:uuid.
func (h *CustomerHandler) DeleteAddress(c *gin.Context) {
	addressUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	if err := h.facade.DeleteAddress(c.Request.Context(), CurrentUserUUID(c), addressUUID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func addressFromRequest(req dto.AddressRequest) model.Address {
	return model.Address{
		Street:     req.Street,
		UbigeoCode: req.UbigeoCode,
		Department: req.Department,
		Province:   req.Province,
		District:   req.District,
	}
}
