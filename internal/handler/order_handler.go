package handler

import (
	"errors"
	"log"
	"net/http"

	"printflow/internal/lifecycle"
	"printflow/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// CreateOrder asks Razorpay to reserve the amount the client computed from
// the page count. Pricing never happens server-side.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount."})
		return
	}

	flow := lifecycle.Resume(lifecycle.StatePriceQuoted)
	orderID, err := h.svc.CreatePaymentOrder(c.Request.Context(), flow, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount."})
			return
		}
		log.Printf("[Order] create payment order failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": orderID})
}

// CreateOrderDetails persists the order record binding the stored document
// to its Razorpay order.
func (h *OrderHandler) CreateOrderDetails(c *gin.Context) {
	var req struct {
		Name       string   `json:"name"`
		FilePath   string   `json:"filePath"`
		PrintColor string   `json:"printColor"`
		Copies     int      `json:"copies"`
		TotalPrice *float64 `json:"totalPrice"`
		OrderID    string   `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flow := lifecycle.Resume(lifecycle.StateOrderCreated)
	order, err := h.svc.CreateOrderDetails(c.Request.Context(), flow, service.CreateOrderInput{
		Name:       req.Name,
		FilePath:   req.FilePath,
		PrintColor: req.PrintColor,
		Copies:     req.Copies,
		TotalPrice: req.TotalPrice,
		OrderID:    req.OrderID,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		log.Printf("[Order] persist order details failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order details."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "data": order})
}
