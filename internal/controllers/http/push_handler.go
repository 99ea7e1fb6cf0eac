package http

import (
	"net/http"

	"canteen-service/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SubscribePush(c *gin.Context) {
	var req PushSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := CurrentClaims(c)
	err := h.notifications.Subscribe(c.Request.Context(), claims.UserID, req.Endpoint, req.Keys.P256dh, req.Keys.Auth)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *Handler) UnsubscribePush(c *gin.Context) {
	var req PushUnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := CurrentClaims(c)
	if err := h.notifications.Unsubscribe(c.Request.Context(), claims.UserID, req.Endpoint); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) TestPush(c *gin.Context) {
	claims := CurrentClaims(c)
	sent, total, err := h.notifications.SendTest(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sent": sent, "total": total})
}

// SendRawPush delivers an arbitrary payload to one subscription; admin
// delivery-testing path.
func (h *Handler) SendRawPush(c *gin.Context) {
	var req RawPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := h.notifications.SendRaw(c.Request.Context(), domain.PushSubscription{
		Endpoint: req.Subscription.Endpoint,
		P256dh:   req.Subscription.Keys.P256dh,
		Auth:     req.Subscription.Keys.Auth,
	}, req.Payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "statusCode": code})
}
