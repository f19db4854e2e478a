package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/service"

	_ "github.com/hrishikesh1231/hrishi-service-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	svc service.Orders

	// maxUploadBytes caps the prescription file read into memory.
	maxUploadBytes int64
}

func NewHandler(s service.Orders, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 12 << 20
	}
	return &Handler{svc: s, maxUploadBytes: maxUploadBytes}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	router.POST("/place-order", h.PlaceOrder)

	api := router.Group("/api")
	{
		api.GET("/orders", h.ListOrders)
		api.PUT("/orders/:id/complete", h.CompleteOrder)
		api.PUT("/orders/:id/cancel", h.CancelOrder)
		api.PUT("/orders/:id/status", h.SetStatus)
		api.POST("/orders/:id/notify", h.NotifyCustomer)
		api.DELETE("/orders/:id", h.DeleteOrder)
		api.POST("/save-admin-push-token", h.SavePushToken)
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running...")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
