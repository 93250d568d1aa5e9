package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/goprotex/Disaster-Response/internal/ids"
	"github.com/goprotex/Disaster-Response/internal/media/exifmeta"
	"github.com/goprotex/Disaster-Response/internal/media/geo"
	"github.com/goprotex/Disaster-Response/internal/media/pipeline"
	"github.com/goprotex/Disaster-Response/internal/models"
	"github.com/goprotex/Disaster-Response/internal/repository"
)

// RequestStore is the persistence collaborator for aid requests.
type RequestStore interface {
	Create(ctx context.Context, req models.Request) error
	GetByID(ctx context.Context, id string) (models.Request, error)
	List(ctx context.Context, filter repository.RequestFilter) ([]models.Request, error)
	Claim(ctx context.Context, id string, claimerID string) error
}

// PhotoStore is the object-storage collaborator.
type PhotoStore interface {
	UploadPhoto(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// BatchProcessor runs the image intake pipeline over one submission's photos.
type BatchProcessor interface {
	Process(ctx context.Context, files []pipeline.File) ([]pipeline.Processed, error)
}

type RequestService struct {
	requests  RequestStore
	photos    PhotoStore
	pipeline  BatchProcessor
	publisher Publisher
	log       zerolog.Logger
}

func NewRequestService(
	requests RequestStore,
	photos PhotoStore,
	proc BatchProcessor,
	publisher Publisher,
	log zerolog.Logger,
) *RequestService {
	return &RequestService{
		requests:  requests,
		photos:    photos,
		pipeline:  proc,
		publisher: publisher,
		log:       log,
	}
}

type SubmitInput struct {
	User            models.User
	Title           string
	Description     string
	Category        string
	Urgency         string
	ContactName     string
	ContactPhone    string
	IsContactShared bool
	GPSLat          *float64
	GPSLng          *float64
	Photos          []pipeline.File
}

// Submit runs the full intake path: batch validation, per-photo extraction
// and compression, location arbitration, photo upload, persistence, and a
// best-effort created event. Metadata problems never block the request; only
// validation failures and a non-image batch do.
func (s *RequestService) Submit(ctx context.Context, input SubmitInput) (models.Request, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Request{}, ErrTitleRequired
	}

	category := models.Category(input.Category)
	if input.Category == "" {
		category = models.CategoryOther
	}
	if !category.Valid() {
		return models.Request{}, fmt.Errorf("%w: %q", ErrInvalidCategory, input.Category)
	}

	urgency := models.Urgency(input.Urgency)
	if input.Urgency == "" {
		urgency = models.UrgencyLow
	}
	if !urgency.Valid() {
		return models.Request{}, fmt.Errorf("%w: %q", ErrInvalidUrgency, input.Urgency)
	}

	var (
		photoURLs   []string
		exifRecords []exifmeta.Record
		location    *geo.Candidate
		takenTime   *string
	)

	if len(input.Photos) > 0 {
		if msgs := pipeline.Validate(input.Photos); len(msgs) > 0 {
			return models.Request{}, &ValidationError{Messages: msgs}
		}

		processed, err := s.pipeline.Process(ctx, input.Photos)
		if err != nil {
			return models.Request{}, err
		}

		uploadedAt := time.Now().UTC()
		for i, p := range processed {
			key := photoKey(input.User.ID, uploadedAt, i, p.File.Name)
			url, err := s.photos.UploadPhoto(ctx, key, p.File.Data, p.File.ContentType)
			if err != nil {
				return models.Request{}, fmt.Errorf("upload photo %d: %w", i+1, err)
			}
			photoURLs = append(photoURLs, url)
			exifRecords = append(exifRecords, p.Exif)
		}

		location = pipeline.ResolveLocation(exifRecords, input.GPSLat, input.GPSLng)
		takenTime = firstCaptureTime(exifRecords)
	} else {
		location = pipeline.ResolveLocation(nil, input.GPSLat, input.GPSLng)
	}

	req := models.Request{
		ID:              ids.New(),
		Title:           title,
		Description:     optional(strings.TrimSpace(input.Description)),
		Category:        category,
		Urgency:         urgency,
		Status:          models.StatusOpen,
		ContactName:     optional(strings.TrimSpace(input.ContactName)),
		ContactPhone:    optional(strings.TrimSpace(input.ContactPhone)),
		IsContactShared: input.IsContactShared,
		PhotoURLs:       photoURLs,
		ExifData:        exifRecords,
		PhotoTakenTime:  takenTime,
		CreatedBy:       input.User.ID,
	}
	if location != nil {
		req.GPSLat = &location.Lat
		req.GPSLng = &location.Lng
	}
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	if err := s.requests.Create(ctx, req); err != nil {
		return models.Request{}, fmt.Errorf("save request: %w", err)
	}

	s.publish(ctx, "request.created", req)

	return req, nil
}

func (s *RequestService) List(ctx context.Context, filter repository.RequestFilter) ([]models.Request, error) {
	return s.requests.List(ctx, filter)
}

// Claim transitions an open request to claimed; repository.ErrRequestNotOpen
// comes back when someone else got there first.
func (s *RequestService) Claim(ctx context.Context, id string, claimer models.User) (models.Request, error) {
	if err := s.requests.Claim(ctx, id, claimer.ID); err != nil {
		return models.Request{}, err
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return models.Request{}, err
	}

	s.publish(ctx, "request.claimed", req)

	return req, nil
}

func (s *RequestService) publish(ctx context.Context, event string, req models.Request) {
	if s.publisher == nil {
		return
	}
	fields := map[string]any{
		"requestId": req.ID,
		"category":  string(req.Category),
		"urgency":   string(req.Urgency),
		"status":    string(req.Status),
	}
	if err := s.publisher.Publish(ctx, event, fields); err != nil {
		s.log.Warn().Err(err).Str("request_id", req.ID).Str("event", event).Msg("publish event failed")
	}
}

// photoKey builds the deterministic object path: upload timestamp, batch
// index, original file name, grouped per submitter.
func photoKey(userID string, at time.Time, index int, name string) string {
	return path.Join("requests", userID, fmt.Sprintf("%d-%d-%s", at.UnixMilli(), index, name))
}

// firstCaptureTime returns the first usable capture timestamp in batch order.
func firstCaptureTime(records []exifmeta.Record) *string {
	for _, rec := range records {
		if rec.CaptureTime != "" {
			t := rec.CaptureTime
			return &t
		}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
