package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/goprotex/Disaster-Response/internal/ids"
	"github.com/goprotex/Disaster-Response/internal/models"
)

// OfferStore is the persistence collaborator for volunteer offers.
type OfferStore interface {
	Create(ctx context.Context, offer models.Offer) error
	List(ctx context.Context, limit int) ([]models.Offer, error)
}

type OfferService struct {
	offers OfferStore
	log    zerolog.Logger
}

func NewOfferService(offers OfferStore, log zerolog.Logger) *OfferService {
	return &OfferService{offers: offers, log: log}
}

type OfferInput struct {
	User         models.User
	Description  string
	Category     string
	ContactName  string
	ContactPhone string
	GPSLat       *float64
	GPSLng       *float64
}

func (s *OfferService) Create(ctx context.Context, input OfferInput) (models.Offer, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return models.Offer{}, ErrDescriptionRequired
	}

	offer := models.Offer{
		ID:           ids.New(),
		Description:  description,
		Category:     optional(strings.TrimSpace(input.Category)),
		ContactName:  optional(strings.TrimSpace(input.ContactName)),
		ContactPhone: optional(strings.TrimSpace(input.ContactPhone)),
		GPSLat:       input.GPSLat,
		GPSLng:       input.GPSLng,
		CreatedBy:    input.User.ID,
	}
	now := time.Now().UTC()
	offer.CreatedAt = now
	offer.UpdatedAt = now

	if err := s.offers.Create(ctx, offer); err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

func (s *OfferService) List(ctx context.Context, limit int) ([]models.Offer, error) {
	return s.offers.List(ctx, limit)
}
