package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/merchantkit/checkout-service/internal/handlers"
	"github.com/merchantkit/checkout-service/internal/telemetry"
)

func NewRouter(checkout *handlers.CheckoutHandler, action *handlers.ActionHandler, receipt *handlers.ReceiptHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "checkout-service"})
	})

	r.POST("/checkout/submit", checkout.Submit)
	r.POST("/actions/:name", action.RunAction)
	r.GET("/receipts/:confirmation", receipt.GetReceipt)

	return r
}
