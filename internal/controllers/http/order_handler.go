package http

import (
	"net/http"
	"strconv"

	"canteen-service/internal/domain"
	"canteen-service/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateOrder places an order from explicit items, or checks out the
// caller's cart when the request has none.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := CurrentClaims(c)
	ctx := c.Request.Context()

	var (
		order *domain.Order
		err   error
	)
	if len(req.Items) > 0 {
		lines := make([]services.OrderLine, 0, len(req.Items))
		for _, item := range req.Items {
			lines = append(lines, services.OrderLine{MenuID: item.MenuID, Quantity: item.Quantity})
		}
		order, err = h.orders.PlaceOrder(ctx, claims.UserID, lines, req.Message)
	} else {
		order, err = h.orders.CheckoutCart(ctx, claims.UserID, req.Message)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "orderId": order.ID, "order": order})
}

func (h *Handler) ListMyOrders(c *gin.Context) {
	claims := CurrentClaims(c)
	orders, err := h.orders.ListUserOrders(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	claims := CurrentClaims(c)
	if order.UserID != claims.UserID && claims.RoleID != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ListAllOrders(c *gin.Context) {
	orders, err := h.orders.ListAllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, req.StatusID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) SalesByDate(c *gin.Context) {
	sales, err := h.orders.SalesByDate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}
