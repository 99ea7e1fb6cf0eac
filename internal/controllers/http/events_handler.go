package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"canteen-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// OrderEvent is one SSE frame: the change kind plus the freshly
// refetched order with its relations.
type OrderEvent struct {
	Type         domain.ChangeType     `json:"type"`
	Order        *domain.Order         `json:"order"`
	Notification *NewOrderNotification `json:"notification,omitempty"`
}

// NewOrderNotification summarizes an insert for the admin dashboard's
// browser notification.
type NewOrderNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag"`
}

// StreamOrders streams every order change to the admin dashboard.
func (h *Handler) StreamOrders(c *gin.Context) {
	h.streamOrders(c, 0)
}

// StreamOrder streams changes for one order to its owner (or an admin).
func (h *Handler) StreamOrder(c *gin.Context) {
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

	h.streamOrders(c, id)
}

func (h *Handler) streamOrders(c *gin.Context, filterOrderID uint64) {
	ctx := c.Request.Context()
	sub, err := h.feed.Subscribe(ctx, filterOrderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open change feed"})
		return
	}
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-sub.C:
			if !ok {
				return
			}
			// Refetch the affected row; on failure the view stays
			// stale until the next event.
			order, err := h.orders.GetOrder(ctx, change.OrderID)
			if err != nil {
				continue
			}

			event := OrderEvent{Type: change.Type, Order: order}
			if change.Type == domain.ChangeInsert && filterOrderID == 0 {
				event.Notification = newOrderSummary(order)
			}

			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", change.Type, data)
			c.Writer.Flush()
		}
	}
}

func newOrderSummary(order *domain.Order) *NewOrderNotification {
	customer := "Unknown Customer"
	if order.User != nil {
		customer = order.User.Username
	}

	names := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		if item.Menu != nil {
			names = append(names, item.Menu.Name)
		}
	}

	return &NewOrderNotification{
		Title: fmt.Sprintf("New Order #%d", order.ID),
		Body: fmt.Sprintf("%s ordered %d items (%s) - %.2f",
			customer, order.TotalQuantity(), strings.Join(names, ", "), order.TotalAmount),
		Tag: fmt.Sprintf("order-%d", order.ID),
	}
}
