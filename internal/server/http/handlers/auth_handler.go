package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qorikusi/backend/internal/server/http/dto"
	"github.com/qorikusi/backend/internal/server/http/middleware"
)

// AuthHandler processes registration, login and password recovery.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// RegisterClient handles POST /auth/register/client.
func (h *AuthHandler) RegisterClient(c *gin.Context) {
	var req dto.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	customer, err := h.facade.RegisterClient(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCustomerResponse(customer))
}

// RegisterAdmin handles POST /auth/register/admin.
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	admin, err := h.facade.RegisterAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"uuid": admin.UUID, "username": admin.Username})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	session, err := h.facade.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, session.Token)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     session.Token,
		Type:      "Bearer",
		ExpiresIn: int64(session.ExpiresIn.Seconds()),
		Roles:     session.Roles,
	})
}

// ForgotPassword handles POST /auth/password/forgot. The answer is 202 no
// matter whether the email exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	if err := h.facade.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// ResetPassword handles POST /auth/password/reset.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	if err := h.facade.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
