package handlers

import (
	"net/http"

	"legalassist/models"
	"legalassist/services/payment"
	"legalassist/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	PaymentService payment.PaymentService
}

func NewPaymentHandler(ps payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{PaymentService: ps}
}

// CreatePaymentHandler handles POST /api/payments/consultations.
func (h *PaymentHandler) CreatePaymentHandler(c *gin.Context) {
	var req models.ConsultationPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	out, err := h.PaymentService.CreateConsultationPayment(c.Request.Context(), userID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	txs, err := h.PaymentService.ListTransactions(c.Request.Context(), userID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

// ConfirmPaymentHandler refreshes a pending transaction from the payment provider.
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	tx, err := h.PaymentService.ConfirmPayment(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}
