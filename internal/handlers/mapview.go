package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) MapSnapshot(c *gin.Context) {
	points, err := h.maps.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("map snapshot failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}
