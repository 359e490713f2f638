package service

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"imagine-algorithm/internal/config"
	"imagine-algorithm/internal/metrics"
	"imagine-algorithm/internal/pkg/logger"
	"imagine-algorithm/pkg/analyzer"
	"imagine-algorithm/pkg/board"
	"imagine-algorithm/pkg/events"
	"imagine-algorithm/pkg/questionnaire"
	"imagine-algorithm/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const feedTopic = "analyzer.feed.test"

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) ofType(typ string) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Event
	for _, e := range p.events {
		if e.EventType() == typ {
			out = append(out, e)
		}
	}
	return out
}

type recordingDelivery struct {
	mu   sync.Mutex
	sent map[uuid.UUID][][]byte
}

func (d *recordingDelivery) Send(id uuid.UUID, payload []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sent == nil {
		d.sent = make(map[uuid.UUID][][]byte)
	}
	d.sent[id] = append(d.sent[id], payload)
}

func (d *recordingDelivery) count(id uuid.UUID) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sent[id])
}

type fixture struct {
	sessions      ISessionService
	analyzer      IAnalyzerService
	board         IBoardService
	questionnaire IQuestionnaireService
	events        *recordingPublisher
	delivery      *recordingDelivery
}

func testFactory(id string) *store.Session {
	n := 0
	return store.NewSession(id, time.Now(),
		analyzer.New(analyzer.Options{Random: analyzer.NewRandomSource(7)}),
		board.New(board.SeedColumns, func() string { n++; return id + "-" + strconv.Itoa(n) }),
		questionnaire.New(questionnaire.Questions),
	)
}

func newFixture(t *testing.T, tick time.Duration) *fixture {
	t.Helper()

	cfg := config.Config{Session: config.SessionConfig{TTL: time.Hour}}
	log := logger.NewNopLogger()
	m := metrics.NewMetrics()

	pubSub := gochannel.NewGoChannel(gochannel.Config{BlockPublishUntilSubscriberAck: true}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	f := &fixture{events: &recordingPublisher{}, delivery: &recordingDelivery{}}
	analytics := NewAnalyticsService(f.events, m, log)
	f.sessions = NewSessionService(cfg, testFactory, m, log)
	f.analyzer = NewAnalyzerService(f.sessions, NewPublisherService(feedTopic, pubSub), analytics, m, log, tick)
	f.board = NewBoardService(f.sessions, analytics, m)
	f.questionnaire = NewQuestionnaireService(f.sessions, analytics, m)

	ctx, cancel := context.WithCancel(context.Background())
	consumer := NewConsumerService(pubSub, feedTopic, f.delivery, analytics, m, log)
	require.NoError(t, consumer.Consume(ctx))

	t.Cleanup(func() {
		f.analyzer.Shutdown()
		f.sessions.Shutdown()
		cancel()
	})
	return f
}
