package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"printflow/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FulfillmentHandler serves the print kiosk: it drains the queue of
// unprinted orders and reports jobs done. Whether an order was paid is the
// kiosk's concern to check via /verify-payment first.
type FulfillmentHandler struct {
	orders *repository.PrintOrderRepository
}

func NewFulfillmentHandler(orders *repository.PrintOrderRepository) *FulfillmentHandler {
	return &FulfillmentHandler{orders: orders}
}

func (h *FulfillmentHandler) ListPending(c *gin.Context) {
	orders, err := h.orders.ListPending()
	if err != nil {
		log.Printf("[Fulfillment] list pending failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pending orders."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *FulfillmentHandler) MarkPrinted(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	if err := h.orders.MarkPrinted(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		log.Printf("[Fulfillment] mark printed %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order marked as printed"})
}
