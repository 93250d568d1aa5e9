package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/goprotex/Disaster-Response/internal/models"
	"github.com/goprotex/Disaster-Response/internal/repository"
	"github.com/goprotex/Disaster-Response/internal/service"
)

type mockOfferStore struct {
	createFn func(ctx context.Context, offer models.Offer) error
	listFn   func(ctx context.Context, limit int) ([]models.Offer, error)
}

func (m *mockOfferStore) Create(ctx context.Context, offer models.Offer) error {
	return m.createFn(ctx, offer)
}

func (m *mockOfferStore) List(ctx context.Context, limit int) ([]models.Offer, error) {
	return m.listFn(ctx, limit)
}

func TestMapSnapshot(t *testing.T) {
	lat1, lng1 := 33.749, -84.388
	lat2, lng2 := 33.755, -84.39
	category := "Water"

	requests := &mockRequestStore{
		listFn: func(ctx context.Context, filter repository.RequestFilter) ([]models.Request, error) {
			return []models.Request{
				{
					ID: "req-1", Category: models.CategoryWater, Urgency: models.UrgencyHigh,
					Status: models.StatusOpen, GPSLat: &lat1, GPSLng: &lng1,
				},
				{ID: "req-2", Urgency: models.UrgencyLow, Status: models.StatusOpen},
			}, nil
		},
	}
	offers := &mockOfferStore{
		listFn: func(ctx context.Context, limit int) ([]models.Offer, error) {
			return []models.Offer{
				{ID: "off-1", Category: &category, GPSLat: &lat2, GPSLng: &lng2},
			}, nil
		},
	}

	svc := service.NewMapService(requests, offers, nil, 0, 0, zerolog.Nop())
	points, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	// The unlocated request is dropped, not plotted at (0, 0).
	if len(points) != 2 {
		t.Fatalf("Snapshot returned %d points %v, want 2", len(points), points)
	}

	req := points[0]
	if req.ID != "req-1" || req.Kind != "request" {
		t.Errorf("first point = %+v, want request req-1", req)
	}
	if req.Weight != 1.0 {
		t.Errorf("high urgency request weight = %v, want 1.0", req.Weight)
	}
	if req.Lat != lat1 || req.Lng != lng1 {
		t.Errorf("request point at (%v, %v)", req.Lat, req.Lng)
	}

	off := points[1]
	if off.ID != "off-1" || off.Kind != "offer" {
		t.Errorf("second point = %+v, want offer off-1", off)
	}
	if off.Weight != 0.3 {
		t.Errorf("offer weight = %v, want baseline 0.3", off.Weight)
	}
	if off.Category != "Water" {
		t.Errorf("offer category = %q", off.Category)
	}
}

func TestMapSnapshotEmpty(t *testing.T) {
	requests := &mockRequestStore{
		listFn: func(ctx context.Context, filter repository.RequestFilter) ([]models.Request, error) {
			return nil, nil
		},
	}
	offers := &mockOfferStore{
		listFn: func(ctx context.Context, limit int) ([]models.Offer, error) {
			return nil, nil
		},
	}

	svc := service.NewMapService(requests, offers, nil, 0, 0, zerolog.Nop())
	points, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if points == nil || len(points) != 0 {
		t.Fatalf("Snapshot = %v, want empty non-nil slice", points)
	}
}
