package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goprotex/Disaster-Response/internal/repository"
)

func (h HandlerSet) AdminListRequests(c *gin.Context) {
	limit := 50
	offset := 0

	if perPage := c.Query("perPage"); perPage != "" {
		if v, err := strconv.Atoi(perPage); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}
	if page := c.Query("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 1 {
			offset = (v - 1) * limit
		}
	}

	requests, err := h.requests.List(c.Request.Context(), repository.RequestFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("admin list requests failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	items := make([]requestResponse, 0, len(requests))
	for _, req := range requests {
		items = append(items, toRequestResponse(req))
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
