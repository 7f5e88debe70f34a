package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	pkgAuth "github.com/qorikusi/backend/internal/pkg/auth"
	"github.com/qorikusi/backend/internal/server/http/dto"
	"github.com/qorikusi/backend/internal/server/http/middleware"
)

// CurrentUserUUID extracts the authenticated user's UUID from the context.
func CurrentUserUUID(c *gin.Context) uuid.UUID {
	val, ok := c.Get(middleware.UserUUIDContextKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := val.(uuid.UUID)
	return id
}

// CurrentCaller returns the caller's UUID, or nil for an anonymous request.
func CurrentCaller(c *gin.Context) *uuid.UUID {
	id := CurrentUserUUID(c)
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// errorStatus maps a domain error to the HTTP status and stable error code
// the API promises.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, pkgAuth.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN"
	case errors.Is(err, domainErrors.ErrAccessDenied):
		return http.StatusForbidden, "ACCESS_DENIED"
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict, "ALREADY_EXISTS"
	case errors.Is(err, domainErrors.ErrCustomerNotFound):
		return http.StatusNotFound, "CLIENT_NOT_FOUND"
	case errors.Is(err, domainErrors.ErrCartNotFound):
		return http.StatusNotFound, "CART_NOT_FOUND"
	case errors.Is(err, domainErrors.ErrProductNotFound):
		return http.StatusNotFound, "PRODUCT_NOT_FOUND"
	case errors.Is(err, domainErrors.ErrProductNotInCart):
		return http.StatusNotFound, "PRODUCT_NOT_IN_CART"
	case errors.Is(err, domainErrors.ErrOrderNotFound):
		return http.StatusNotFound, "ORDER_NOT_FOUND"
	case errors.Is(err, domainErrors.ErrPaymentNotFound):
		return http.StatusNotFound, "PAYMENT_NOT_FOUND"
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domainErrors.ErrInsufficientStock):
		return http.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		return http.StatusConflict, "INVALID_STATUS_TRANSITION"
	case errors.Is(err, domainErrors.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "SERVICE_COMMUNICATION_ERROR"
	case errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidReceiptType),
		errors.Is(err, domainErrors.ErrInvalidPaymentMethod):
		return http.StatusBadRequest, "INVALID_REQUEST"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// respondError writes the error envelope for a failed operation. Only the
// stable code and a timestamp go over the wire; raw error text stays in the
// logs.
func respondError(c *gin.Context, err error) {
	status, code := errorStatus(err)
	c.JSON(status, dto.NewErrorResponse(code))
}

// respondBadRequest rejects a payload that failed binding.
func respondBadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST"))
}

// pathUUID parses a UUID path parameter, answering 400 on garbage.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST"))
		return uuid.Nil, false
	}
	return id, true
}
