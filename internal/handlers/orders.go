package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/models"
	"printshop-backend/internal/repository"
)

type OrdersHandler struct {
	repo *repository.OrderRepository
}

func NewOrdersHandler(repo *repository.OrderRepository) *OrdersHandler {
	return &OrdersHandler{repo: repo}
}

// CreateOrder godoc
// @Summary     Submit a quote request
// @Description Creates an immutable order. orderId and createdAt are always assigned by the server.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.OrderFields true "Order fields"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req models.OrderFields
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	order, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to create order")
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{
		Success: true,
		OrderID: order.OrderID,
		Order:   order,
	})
}

// ListOrders godoc
// @Summary     List orders
// @Description Returns all orders, newest first.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	orders, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, models.OrderListResponse{Success: true, Orders: orders})
}
