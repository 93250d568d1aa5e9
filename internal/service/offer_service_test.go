package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/goprotex/Disaster-Response/internal/models"
	"github.com/goprotex/Disaster-Response/internal/service"
)

func TestOfferCreate(t *testing.T) {
	var saved models.Offer
	store := &mockOfferStore{
		createFn: func(ctx context.Context, offer models.Offer) error {
			saved = offer
			return nil
		},
	}
	svc := service.NewOfferService(store, zerolog.Nop())

	lat, lng := 33.749, -84.388
	got, err := svc.Create(context.Background(), service.OfferInput{
		User:        models.User{ID: "vol-1"},
		Description: "  Pickup truck, can haul supplies  ",
		Category:    "Equipment",
		ContactName: "Sam",
		GPSLat:      &lat,
		GPSLng:      &lng,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got.ID == "" {
		t.Error("offer has no id")
	}
	if got.Description != "Pickup truck, can haul supplies" {
		t.Errorf("Description = %q, want trimmed text", got.Description)
	}
	if got.Category == nil || *got.Category != "Equipment" {
		t.Errorf("Category = %v", got.Category)
	}
	if got.CreatedBy != "vol-1" {
		t.Errorf("CreatedBy = %q", got.CreatedBy)
	}
	if got.GPSLat == nil || *got.GPSLat != lat {
		t.Errorf("GPSLat = %v", got.GPSLat)
	}
	if saved.ID != got.ID {
		t.Error("persisted offer differs from returned offer")
	}
}

func TestOfferCreateRequiresDescription(t *testing.T) {
	svc := service.NewOfferService(&mockOfferStore{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), service.OfferInput{
		User:        models.User{ID: "vol-1"},
		Description: "   ",
	})
	if !errors.Is(err, service.ErrDescriptionRequired) {
		t.Fatalf("Create error = %v, want ErrDescriptionRequired", err)
	}
}
