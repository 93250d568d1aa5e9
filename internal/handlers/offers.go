package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goprotex/Disaster-Response/internal/models"
	"github.com/goprotex/Disaster-Response/internal/service"
)

type createOfferRequest struct {
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category"`
	ContactName  string   `json:"contactName"`
	ContactPhone string   `json:"contactPhone"`
	GPSLat       *float64 `json:"gpsLat"`
	GPSLng       *float64 `json:"gpsLng"`
}

type offerResponse struct {
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	Category     *string   `json:"category,omitempty"`
	ContactName  *string   `json:"contactName,omitempty"`
	ContactPhone *string   `json:"contactPhone,omitempty"`
	GPSLat       *float64  `json:"gpsLat,omitempty"`
	GPSLng       *float64  `json:"gpsLng,omitempty"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toOfferResponse(offer models.Offer) offerResponse {
	return offerResponse{
		ID:           offer.ID,
		Description:  offer.Description,
		Category:     offer.Category,
		ContactName:  offer.ContactName,
		ContactPhone: offer.ContactPhone,
		GPSLat:       offer.GPSLat,
		GPSLng:       offer.GPSLng,
		CreatedBy:    offer.CreatedBy,
		CreatedAt:    offer.CreatedAt,
	}
}

func (h HandlerSet) CreateOffer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer, err := h.offers.Create(c.Request.Context(), service.OfferInput{
		User:         user,
		Description:  req.Description,
		Category:     req.Category,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		GPSLat:       req.GPSLat,
		GPSLng:       req.GPSLng,
	})
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("create offer failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toOfferResponse(offer))
}

func (h HandlerSet) ListOffers(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	offers, err := h.offers.List(c.Request.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list offers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	items := make([]offerResponse, 0, len(offers))
	for _, offer := range offers {
		items = append(items, toOfferResponse(offer))
	}
	c.JSON(http.StatusOK, items)
}
