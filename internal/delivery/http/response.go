package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

type errorResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Success bool `json:"success"`
}

type orderCreatedResponse struct {
	Success bool         `json:"success"`
	Order   models.Order `json:"order"`
	OrderID string       `json:"orderId"`
}

type listOrdersResponse struct {
	Success bool           `json:"success"`
	Orders  []models.Order `json:"orders"`
}

type notifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}
