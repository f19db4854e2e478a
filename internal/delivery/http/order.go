package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/service"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/storage"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 32)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

// parseItems accepts either repeated "items" form fields or a single field
// holding a JSON array. A single plain string becomes a one-item list.
func parseItems(c *gin.Context) []string {
	values := c.PostFormArray("items")
	if len(values) == 1 {
		raw := strings.TrimSpace(values[0])
		if strings.HasPrefix(raw, "[") {
			var decoded []string
			if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
				return decoded
			}
		}
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// PlaceOrder
// @Summary PlaceOrder
// @Description Creates an order from a multipart form; the optional file part "prescription" is uploaded to media storage first.
// @ID place-order
// @Accept mpfd
// @Produce json
// @Success 201 {object} orderCreatedResponse
// @Failure 400,500 {object} errorResponse
// @Router /place-order [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	in := service.PlaceOrderInput{
		CustomerName:  strings.TrimSpace(c.PostForm("customerName")),
		CustomerPhone: strings.TrimSpace(c.PostForm("customerPhone")),
		Address:       strings.TrimSpace(c.PostForm("address")),
		ShopID:        c.PostForm("shopId"),
		ShopName:      c.PostForm("shopName"),
		Note:          c.PostForm("note"),
		Items:         parseItems(c),
	}

	if in.CustomerName == "" || in.CustomerPhone == "" || in.Address == "" || len(in.Items) == 0 {
		newErrorResponse(c, http.StatusBadRequest, "Missing required fields: name, phone, address, items")
		return
	}

	fh, err := c.FormFile("prescription")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// no attachment
	case err != nil:
		newErrorResponse(c, http.StatusBadRequest, "invalid prescription upload")
		return
	default:
		if fh.Size > h.maxUploadBytes {
			newErrorResponse(c, http.StatusBadRequest, "prescription file too large")
			return
		}
		f, err := fh.Open()
		if err != nil {
			newErrorResponse(c, http.StatusInternalServerError, "read prescription upload")
			return
		}
		defer f.Close()
		buf, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
		if err != nil {
			newErrorResponse(c, http.StatusInternalServerError, "read prescription upload")
			return
		}
		if int64(len(buf)) > h.maxUploadBytes {
			newErrorResponse(c, http.StatusBadRequest, "prescription file too large")
			return
		}
		in.Prescription = buf
	}

	order, err := h.svc.PlaceOrder(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			newErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrFileTooLarge):
			newErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			newErrorResponse(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusCreated, orderCreatedResponse{
		Success: true,
		Order:   order,
		OrderID: order.OrderID,
	})
}

// ListOrders
// @Summary ListOrders
// @Description Returns every order, newest first.
// @ID list-orders
// @Produce json
// @Success 200 {object} listOrdersResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders()
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, listOrdersResponse{Success: true, Orders: orders})
}

func (h *Handler) CompleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.writeStatusResult(c, h.svc.CompleteOrder(id))
}

func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.writeStatusResult(c, h.svc.CancelOrder(id))
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Status) == "" {
		newErrorResponse(c, http.StatusBadRequest, "Status required")
		return
	}

	h.writeStatusResult(c, h.svc.SetStatus(id, strings.TrimSpace(req.Status)))
}

func (h *Handler) writeStatusResult(c *gin.Context, err error) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			newErrorResponse(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrValidation):
			newErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			newErrorResponse(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	c.JSON(http.StatusOK, statusResponse{Success: true})
}

type notifyRequest struct {
	TotalPrice    *float64 `json:"totalPrice"`
	CustomMessage string   `json:"customMessage"`
}

// NotifyCustomer
// @Summary NotifyCustomer
// @Description Optionally sets the total price and queues a WhatsApp confirmation message for the customer.
// @ID notify-customer
// @Accept json
// @Produce json
// @Success 200 {object} notifyResponse
// @Failure 400,404,500 {object} errorResponse
// @Router /api/orders/{id}/notify [post]
func (h *Handler) NotifyCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req notifyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			newErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	order, err := h.svc.NotifyCustomer(c.Request.Context(), id, service.NotifyInput{
		TotalPrice:    req.TotalPrice,
		CustomMessage: req.CustomMessage,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			newErrorResponse(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrNoCustomerPhone):
			newErrorResponse(c, http.StatusBadRequest, "Order has no customerPhone")
		default:
			newErrorResponse(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, notifyResponse{
		Success: true,
		Message: "WhatsApp notification queued",
		OrderID: order.OrderID,
	})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteOrder(id); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, statusResponse{Success: true})
}

type savePushTokenRequest struct {
	AdminID string `json:"adminId"`
	Token   string `json:"token"`
}

func (h *Handler) SavePushToken(c *gin.Context) {
	var req savePushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SavePushToken(req.AdminID, req.Token); err != nil {
		if errors.Is(err, service.ErrValidation) {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, statusResponse{Success: true})
}
