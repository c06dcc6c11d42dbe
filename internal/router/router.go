package router

import (
	"net/http"
	"time"

	"printflow/config"
	"printflow/internal/handler"
	"printflow/internal/middleware"
	"printflow/internal/repository"
	"printflow/internal/service"
	"printflow/pkg/razorpay"
	"printflow/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires repositories, services, and handlers into a gin engine. The
// blob store and gateway come in as interfaces so tests can run the full
// router against fakes.
func Setup(cfg *config.Config, db *gorm.DB, store storage.BlobStore, gateway razorpay.Gateway) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// The frontend is served from elsewhere; mirror the original's open CORS.
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type"},
	}))
	r.Use(middleware.RateLimit(middleware.NewIPRateLimiter(100, 60*time.Second)))

	orderRepo := repository.NewPrintOrderRepository(db)
	orderSvc := service.NewOrderService(store, gateway, orderRepo)

	uploadHandler := handler.NewUploadHandler(orderSvc)
	orderHandler := handler.NewOrderHandler(orderSvc)
	paymentHandler := handler.NewPaymentHandler(orderSvc)
	fulfillmentHandler := handler.NewFulfillmentHandler(orderRepo)

	r.POST("/upload", uploadHandler.Upload)
	r.POST("/create-order", orderHandler.CreateOrder)
	r.POST("/create-order-details", orderHandler.CreateOrderDetails)
	r.POST("/verify-payment", paymentHandler.VerifyPayment)

	r.GET("/orders/pending", fulfillmentHandler.ListPending)
	r.POST("/orders/:id/printed", fulfillmentHandler.MarkPrinted)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
