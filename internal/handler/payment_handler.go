package handler

import (
	"log"
	"net/http"

	"printflow/internal/lifecycle"
	"printflow/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	svc *service.OrderService
}

func NewPaymentHandler(svc *service.OrderService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// VerifyPayment asks the gateway whether the payment was captured. A payment
// in any other state is a 400; only a failed gateway query is a 500.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req struct {
		PaymentID string `json:"paymentId"`
		OrderID   string `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PaymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paymentId is required"})
		return
	}

	flow := lifecycle.Resume(lifecycle.StateRecordPersisted)
	captured, err := h.svc.VerifyPayment(c.Request.Context(), flow, req.PaymentID)
	if err != nil {
		log.Printf("[Payment] verify %s failed: %v", req.PaymentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify payment."})
		return
	}
	if !captured {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment not successful"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
