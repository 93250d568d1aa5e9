package jobs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/goprotex/Disaster-Response/internal/service"
)

// Scheduler keeps the map snapshot warm and emits periodic housekeeping
// events for downstream consumers.
type Scheduler struct {
	cron  *cron.Cron
	maps  *service.MapService
	queue *redis.Client
	log   zerolog.Logger
}

func NewScheduler(maps *service.MapService, queue *redis.Client, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:  c,
		maps:  maps,
		queue: queue,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 */1 * * * *", s.refreshSnapshot); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 0 3 * * *", s.emitCleanup); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish, up to a short grace period.
func (s *Scheduler) Stop() {
	select {
	case <-s.cron.Stop().Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) refreshSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.maps.Refresh(ctx); err != nil {
		s.log.Error().Err(err).Msg("map snapshot refresh failed")
	}
}

func (s *Scheduler) emitCleanup() {
	if s.queue == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.queue.XAdd(ctx, &redis.XAddArgs{
		Stream: "dispatch:events",
		Values: map[string]any{"type": "cleanup"},
	}).Result(); err != nil {
		s.log.Error().Err(err).Msg("emit cleanup event failed")
	}
}
