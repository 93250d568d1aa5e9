package service

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const eventStream = "dispatch:events"

// Publisher emits best-effort domain events; failures are logged by callers,
// never surfaced to submitters.
type Publisher interface {
	Publish(ctx context.Context, event string, fields map[string]any) error
}

// StreamPublisher writes events to a redis stream for map clients and other
// downstream consumers.
type StreamPublisher struct {
	queue *redis.Client
}

func NewStreamPublisher(queue *redis.Client) *StreamPublisher {
	return &StreamPublisher{queue: queue}
}

func (p *StreamPublisher) Publish(ctx context.Context, event string, fields map[string]any) error {
	if p.queue == nil {
		return nil
	}

	values := map[string]any{"type": event}
	for k, v := range fields {
		values[k] = v
	}

	_, err := p.queue.XAdd(ctx, &redis.XAddArgs{
		Stream: eventStream,
		Values: values,
	}).Result()
	return err
}
