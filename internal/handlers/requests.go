package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goprotex/Disaster-Response/internal/media/exifmeta"
	"github.com/goprotex/Disaster-Response/internal/media/pipeline"
	"github.com/goprotex/Disaster-Response/internal/models"
	"github.com/goprotex/Disaster-Response/internal/repository"
	"github.com/goprotex/Disaster-Response/internal/service"
)

type requestResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     *string           `json:"description,omitempty"`
	Category        string            `json:"category"`
	Urgency         string            `json:"urgency"`
	Status          string            `json:"status"`
	ContactName     *string           `json:"contactName,omitempty"`
	ContactPhone    *string           `json:"contactPhone,omitempty"`
	IsContactShared bool              `json:"isContactShared"`
	PhotoURLs       []string          `json:"photoUrls,omitempty"`
	ExifData        []exifmeta.Record `json:"exifData,omitempty"`
	GPSLat          *float64          `json:"gpsLat,omitempty"`
	GPSLng          *float64          `json:"gpsLng,omitempty"`
	PhotoTakenTime  *string           `json:"photoTakenTime,omitempty"`
	CreatedBy       string            `json:"createdBy"`
	ClaimedBy       *string           `json:"claimedBy,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func toRequestResponse(req models.Request) requestResponse {
	return requestResponse{
		ID:              req.ID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        string(req.Category),
		Urgency:         string(req.Urgency),
		Status:          string(req.Status),
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
		IsContactShared: req.IsContactShared,
		PhotoURLs:       req.PhotoURLs,
		ExifData:        req.ExifData,
		GPSLat:          req.GPSLat,
		GPSLng:          req.GPSLng,
		PhotoTakenTime:  req.PhotoTakenTime,
		CreatedBy:       req.CreatedBy,
		ClaimedBy:       req.ClaimedBy,
		CreatedAt:       req.CreatedAt,
		UpdatedAt:       req.UpdatedAt,
	}
}

func (h HandlerSet) CreateRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_form"})
		return
	}

	files, err := readUploads(form.File["photos"])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read_upload_failed"})
		return
	}

	input := service.SubmitInput{
		User:            user,
		Title:           c.PostForm("title"),
		Description:     c.PostForm("description"),
		Category:        c.PostForm("category"),
		Urgency:         c.PostForm("urgency"),
		ContactName:     c.PostForm("contactName"),
		ContactPhone:    c.PostForm("contactPhone"),
		IsContactShared: c.PostForm("isContactShared") != "false",
		GPSLat:          parseCoord(c.PostForm("gpsLat")),
		GPSLng:          parseCoord(c.PostForm("gpsLng")),
		Photos:          files,
	}

	req, err := h.requests.Submit(c.Request.Context(), input)
	if err != nil {
		var validation *service.ValidationError
		switch {
		case errors.As(err, &validation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.Messages})
		case errors.Is(err, pipeline.ErrNotImage),
			errors.Is(err, service.ErrTitleRequired),
			errors.Is(err, service.ErrInvalidCategory),
			errors.Is(err, service.ErrInvalidUrgency):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Str("user_id", user.ID).Msg("submit request failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		}
		return
	}

	c.JSON(http.StatusCreated, toRequestResponse(req))
}

func (h HandlerSet) ListRequests(c *gin.Context) {
	filter := repository.RequestFilter{Limit: 50}

	if v := c.Query("category"); v != "" {
		category := models.Category(v)
		filter.Category = &category
	}
	if v := c.Query("urgency"); v != "" {
		urgency := models.Urgency(v)
		filter.Urgency = &urgency
	}
	if v := c.Query("status"); v != "" {
		status := models.RequestStatus(v)
		filter.Status = &status
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			filter.Limit = n
		}
	}

	requests, err := h.requests.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("list requests failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	items := make([]requestResponse, 0, len(requests))
	for _, req := range requests {
		items = append(items, toRequestResponse(req))
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) ClaimRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	req, err := h.requests.Claim(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "request_not_found"})
		case errors.Is(err, repository.ErrRequestNotOpen):
			c.JSON(http.StatusConflict, gin.H{"error": "request is no longer available"})
		default:
			h.log.Error().Err(err).Str("request_id", c.Param("id")).Msg("claim failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		}
		return
	}

	c.JSON(http.StatusOK, toRequestResponse(req))
}

func readUploads(headers []*multipart.FileHeader) ([]pipeline.File, error) {
	files := make([]pipeline.File, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, err
		}

		files = append(files, pipeline.File{
			Name:        filepath.Base(header.Filename),
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Data:        data,
		})
	}
	return files, nil
}

func parseCoord(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}
