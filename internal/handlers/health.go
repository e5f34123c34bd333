package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 🩺 GET /healthz
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"carts":  h.carts.Len(),
	})
}
