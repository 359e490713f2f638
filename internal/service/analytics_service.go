package service

import (
	"context"
	"time"

	"imagine-algorithm/internal/metrics"
	"imagine-algorithm/internal/pkg/logger"
	"imagine-algorithm/pkg/events"
)

// EventPublisher is satisfied by the NATS publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// IAnalyticsService records participant activity on the analytics stream.
// Delivery is best effort: failures are logged and counted, never returned.
type IAnalyticsService interface {
	Track(ctx context.Context, event events.Event)
}

type analyticsService struct {
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    logger.ILogger
	timeout   time.Duration
}

// NewAnalyticsService accepts a nil publisher, in which case events are
// only counted.
func NewAnalyticsService(publisher EventPublisher, m *metrics.Metrics, log logger.ILogger) IAnalyticsService {
	return &analyticsService{
		publisher: publisher,
		metrics:   m,
		logger:    log,
		timeout:   2 * time.Second,
	}
}

func (s *analyticsService) Track(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	err := s.publisher.Publish(ctx, event)
	s.metrics.RecordEventPublished(event.EventType(), err == nil)
	if err != nil {
		s.logger.Warn("ANALYTICS", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
