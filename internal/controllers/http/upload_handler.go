package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 5 << 20 // 5 MB

// UploadImage forwards a menu image to the external image host and
// returns the hosted URL for the menu form to store.
func (h *Handler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only image files are allowed"})
		return
	}
	if header.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file size must be less than 5MB"})
		return
	}

	result, err := h.uploader.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"url":       result.URL,
		"public_id": result.PublicID,
	})
}
