package service

import (
	"context"
	"encoding/json"
	"time"

	"imagine-algorithm/internal/dto"
	"imagine-algorithm/internal/metrics"
	"imagine-algorithm/internal/pkg/logger"
	"imagine-algorithm/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// FeedDelivery pushes a payload to every connection of a session.
type FeedDelivery interface {
	Send(sessionID uuid.UUID, payload []byte)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains feed updates off the in-process bus, forwards them
// to the websocket hub and records newly displayed insights as analytics.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	delivery   FeedDelivery
	analytics  IAnalyticsService
	metrics    *metrics.Metrics
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	delivery FeedDelivery,
	analytics IAnalyticsService,
	m *metrics.Metrics,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		delivery:   delivery,
		analytics:  analytics,
		metrics:    m,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Nothing here is retriable, so every message is acked.
	defer msg.Ack()

	var update dto.FeedUpdateMessage
	if err := json.Unmarshal(msg.Payload, &update); err != nil {
		cs.logger.Error("FEED", "Failed to unmarshal feed update", map[string]interface{}{"error": err.Error()})
		return
	}

	sessionID, err := uuid.Parse(update.SessionId)
	if err != nil {
		cs.logger.Warn("FEED", "Feed update for malformed session id", map[string]interface{}{"session_id": update.SessionId})
		return
	}

	push, err := json.Marshal(dto.FeedPush{Type: "feed", Data: update})
	if err != nil {
		cs.logger.Error("FEED", "Failed to marshal feed push", map[string]interface{}{"error": err.Error()})
		return
	}
	cs.delivery.Send(sessionID, push)
	cs.metrics.FeedPushes.Inc()

	for _, in := range update.Fresh {
		at := in.Timestamp
		if at.IsZero() {
			at = time.Now()
		}
		cs.analytics.Track(ctx, events.InsightGenerated(update.SessionId, in.ID, in.Prefix, in.Text, at))
	}
}
