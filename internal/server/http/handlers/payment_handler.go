package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/server/http/dto"
)

// PaymentHandler serves checkout settlement.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler creates PaymentHandler instance.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Process handles POST /client/payments. A declined charge is still a 200:
// the payment exists, in Failed state, with no receipt.
func (h *PaymentHandler) Process(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	method, err := model.ParsePaymentMethod(req.Method)
	if err != nil {
		respondError(c, err)
		return
	}
	kind, err := model.ParseReceiptKind(req.Receipt.Kind)
	if err != nil {
		respondError(c, err)
		return
	}

	payment, receipt, err := h.facade.Process(c.Request.Context(), CurrentUserUUID(c), req.OrderUUID, req.Amount, method, model.ReceiptRequest{
		Kind:       kind,
		TaxID:      req.Receipt.TaxID,
		LegalName:  req.Receipt.LegalName,
		NationalID: req.Receipt.NationalID,
		HolderName: req.Receipt.HolderName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if payment.Status == model.PaymentStatusFailed {
		status = http.StatusOK
	}
	c.JSON(status, dto.NewPaymentResponse(payment, receipt))
}

// Get handles GET /client/payments/:uuid.
func (h *PaymentHandler) Get(c *gin.Context) {
	paymentUUID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	payment, err := h.facade.Get(c.Request.Context(), paymentUUID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentResponse(payment, nil))
}
