package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/goprotex/Disaster-Response/internal/models"
	"github.com/goprotex/Disaster-Response/internal/repository"
)

const mapSnapshotKey = "map:snapshot"

// MapPoint is one plottable entity for the client map. Weight feeds the
// heatmap; offers carry the baseline weight since urgency applies only to
// requests.
type MapPoint struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Category string  `json:"category,omitempty"`
	Urgency  string  `json:"urgency,omitempty"`
	Status   string  `json:"status,omitempty"`
	Weight   float64 `json:"weight"`
}

type MapService struct {
	requests RequestStore
	offers   OfferStore
	cache    *redis.Client
	ttl      time.Duration
	limit    int
	log      zerolog.Logger
}

func NewMapService(
	requests RequestStore,
	offers OfferStore,
	cache *redis.Client,
	ttl time.Duration,
	limit int,
	log zerolog.Logger,
) *MapService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if limit <= 0 {
		limit = 500
	}
	return &MapService{
		requests: requests,
		offers:   offers,
		cache:    cache,
		ttl:      ttl,
		limit:    limit,
		log:      log,
	}
}

// Snapshot returns every located request and offer. Cache-aside with a short
// TTL; the scheduler refreshes it in the background.
func (s *MapService) Snapshot(ctx context.Context) ([]MapPoint, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, mapSnapshotKey).Bytes(); err == nil {
			var points []MapPoint
			if err := json.Unmarshal(data, &points); err == nil {
				return points, nil
			}
		}
	}

	return s.rebuild(ctx)
}

// Refresh rebuilds the snapshot unconditionally.
func (s *MapService) Refresh(ctx context.Context) error {
	_, err := s.rebuild(ctx)
	return err
}

func (s *MapService) rebuild(ctx context.Context) ([]MapPoint, error) {
	requests, err := s.requests.List(ctx, repository.RequestFilter{Limit: s.limit})
	if err != nil {
		return nil, err
	}

	offers, err := s.offers.List(ctx, s.limit)
	if err != nil {
		return nil, err
	}

	points := make([]MapPoint, 0, len(requests)+len(offers))
	for _, req := range requests {
		if req.GPSLat == nil || req.GPSLng == nil {
			continue
		}
		points = append(points, MapPoint{
			ID:       req.ID,
			Kind:     "request",
			Lat:      *req.GPSLat,
			Lng:      *req.GPSLng,
			Category: string(req.Category),
			Urgency:  string(req.Urgency),
			Status:   string(req.Status),
			Weight:   req.Urgency.HeatWeight(),
		})
	}
	for _, offer := range offers {
		if offer.GPSLat == nil || offer.GPSLng == nil {
			continue
		}
		point := MapPoint{
			ID:     offer.ID,
			Kind:   "offer",
			Lat:    *offer.GPSLat,
			Lng:    *offer.GPSLng,
			Weight: models.UrgencyLow.HeatWeight(),
		}
		if offer.Category != nil {
			point.Category = *offer.Category
		}
		points = append(points, point)
	}

	if s.cache != nil {
		if data, err := json.Marshal(points); err == nil {
			if err := s.cache.Set(ctx, mapSnapshotKey, data, s.ttl).Err(); err != nil {
				s.log.Warn().Err(err).Msg("cache map snapshot failed")
			}
		}
	}

	return points, nil
}
