package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"imagine-algorithm/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventHandler is a function that processes an event.
type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber reads analytics events back off the stream.
type Subscriber struct {
	nc      *nats.Conn
	js      jetstream.JetStream
	consume jetstream.ConsumeContext
}

func NewSubscriber(url string) (*Subscriber, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}
	return &Subscriber{nc: nc, js: js}, nil
}

func Decode(data []byte) (events.BaseEvent, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return events.BaseEvent{}, err
	}
	return events.BaseEvent{Type: env.Type, Data: env.Data, OccurredAt: env.OccurredAt}, nil
}

// Subscribe registers a handler for subjects matching filter using a
// durable consumer. Undecodable messages are terminated, handler errors
// are retried.
func (s *Subscriber) Subscribe(ctx context.Context, filter, durableName string, handler EventHandler) error {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: filter,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		event, err := Decode(msg.Data())
		if err != nil {
			log.Printf("Error unmarshalling event data: %v", err)
			_ = msg.Term()
			return
		}
		if err := handler(ctx, event); err != nil {
			log.Printf("Handler failed for event %s: %v", msg.Subject(), err)
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	s.consume = cc

	log.Printf("Subscribed to %s with durable %s", filter, durableName)
	return nil
}

func (s *Subscriber) Close() {
	if s.consume != nil {
		s.consume.Stop()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
