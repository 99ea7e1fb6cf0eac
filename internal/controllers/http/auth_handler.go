package http

import (
	"net/http"

	"canteen-service/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tokens, err := h.auth.SignUp(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "tokens": tokens})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tokens, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "tokens": tokens})
}

// AuthCallback lands a freshly authenticated browser on the surface for
// its role: admins on the dashboard, customers on the catalog.
func (h *Handler) AuthCallback(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims != nil && claims.RoleID == domain.RoleAdmin {
		c.Redirect(http.StatusFound, "/dashboard/order")
		return
	}
	c.Redirect(http.StatusFound, "/catalog")
}
