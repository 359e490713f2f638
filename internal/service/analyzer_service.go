package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"imagine-algorithm/internal/dto"
	"imagine-algorithm/internal/metrics"
	"imagine-algorithm/internal/pkg/logger"
	"imagine-algorithm/pkg/analyzer"
	"imagine-algorithm/pkg/events"
	"imagine-algorithm/pkg/store"
)

var ErrCategoryNotFound = errors.New("category not found")

type IAnalyzerService interface {
	Snapshot(ctx context.Context, sessionId string) *dto.AnalyzerSnapshotResponse
	HoverStart(ctx context.Context, sessionId string, req *dto.HoverStartRequest) *dto.HoverResponse
	HoverEnd(ctx context.Context, sessionId string, req *dto.HoverEndRequest) *dto.AnalyzerSnapshotResponse
	AddCategory(ctx context.Context, sessionId string, req *dto.AddCategoryRequest) *dto.AddCategoryResponse
	Category(ctx context.Context, sessionId, name string) (*analyzer.CategoryView, error)
	Shutdown()
}

type analyzerService struct {
	sessions  ISessionService
	publisher IPublisherService
	analytics IAnalyticsService
	metrics   *metrics.Metrics
	logger    logger.ILogger
	interval  time.Duration

	// parent of every tick loop
	ctx    context.Context
	cancel context.CancelFunc
}

func NewAnalyzerService(
	sessions ISessionService,
	publisher IPublisherService,
	analytics IAnalyticsService,
	m *metrics.Metrics,
	log logger.ILogger,
	tickInterval time.Duration,
) IAnalyzerService {
	if tickInterval <= 0 {
		tickInterval = analyzer.DefaultTickInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &analyzerService{
		sessions:  sessions,
		publisher: publisher,
		analytics: analytics,
		metrics:   m,
		logger:    log,
		interval:  tickInterval,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (s *analyzerService) Snapshot(ctx context.Context, sessionId string) *dto.AnalyzerSnapshotResponse {
	sess := s.acquire(sessionId)

	var res *dto.AnalyzerSnapshotResponse
	sess.Do(func(st store.State) {
		res = snapshot(sessionId, st.Analyzer)
	})
	return res
}

func (s *analyzerService) HoverStart(ctx context.Context, sessionId string, req *dto.HoverStartRequest) *dto.HoverResponse {
	sess := s.acquire(sessionId)

	var update *dto.FeedUpdateMessage
	var state *dto.AnalyzerSnapshotResponse
	sess.DoAndRestart(func(st store.State) bool {
		update = step(sessionId, st.Analyzer, func() []analyzer.Insight {
			return st.Analyzer.HoverStart(req.Category)
		})
		state = snapshot(sessionId, st.Analyzer)
		return update != nil
	}, s.starter(sess))

	res := &dto.HoverResponse{Insights: []analyzer.Insight{}, State: *state}
	if update == nil {
		return res
	}

	res.Insights = update.Batch
	s.metrics.HoverStarts.Inc()
	s.analytics.Track(ctx, events.HoverStarted(sessionId, req.Category, time.Now()))
	s.dispatch(ctx, update)
	return res
}

func (s *analyzerService) HoverEnd(ctx context.Context, sessionId string, req *dto.HoverEndRequest) *dto.AnalyzerSnapshotResponse {
	sess := s.acquire(sessionId)

	var res *dto.AnalyzerSnapshotResponse
	sess.DoAndRestart(func(st store.State) bool {
		changed := st.Analyzer.HoverEnd(req.Category)
		res = snapshot(sessionId, st.Analyzer)
		return changed
	}, s.starter(sess))
	return res
}

func (s *analyzerService) AddCategory(ctx context.Context, sessionId string, req *dto.AddCategoryRequest) *dto.AddCategoryResponse {
	sess := s.acquire(sessionId)

	var added bool
	var created analyzer.Category
	var state *dto.AnalyzerSnapshotResponse
	sess.Do(func(st store.State) {
		added = st.Analyzer.AddCategory(req.Name)
		if added {
			cats := st.Analyzer.Store().Categories()
			created = cats[len(cats)-1]
		}
		state = snapshot(sessionId, st.Analyzer)
	})

	if added {
		s.metrics.CategoriesAdded.Inc()
		s.analytics.Track(ctx, events.CategoryAdded(sessionId, created.Name, created.Points, time.Now()))
	}
	return &dto.AddCategoryResponse{Added: added, State: *state}
}

func (s *analyzerService) Category(ctx context.Context, sessionId, name string) (*analyzer.CategoryView, error) {
	res := s.Snapshot(ctx, sessionId)
	for _, c := range res.Categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
}

// Shutdown stops every tick loop.
func (s *analyzerService) Shutdown() {
	s.cancel()
}

func (s *analyzerService) acquire(sessionId string) *store.Session {
	sess := s.sessions.Acquire(sessionId)
	if !sess.Ticking() {
		sess.RestartTicker(s.starter(sess))
	}
	return sess
}

func (s *analyzerService) starter(sess *store.Session) func() context.CancelFunc {
	return func() context.CancelFunc {
		ctx, cancel := context.WithCancel(s.ctx)
		go s.tickLoop(ctx, sess)
		return cancel
	}
}

func (s *analyzerService) tickLoop(ctx context.Context, sess *store.Session) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, sess)
		}
	}
}

func (s *analyzerService) tick(ctx context.Context, sess *store.Session) {
	var update *dto.FeedUpdateMessage
	ticked := false
	sess.Do(func(st store.State) {
		// A restart may have cancelled us while we waited for the lock.
		if ctx.Err() != nil {
			return
		}
		ticked = true
		update = step(sess.ID, st.Analyzer, st.Analyzer.Tick)
	})
	if !ticked {
		return
	}
	s.metrics.Ticks.Inc()
	if update != nil {
		s.dispatch(ctx, update)
	}
}

func (s *analyzerService) dispatch(ctx context.Context, update *dto.FeedUpdateMessage) {
	for _, in := range update.Batch {
		s.metrics.RecordInsights(in.Prefix)
	}

	payload, err := json.Marshal(update)
	if err != nil {
		s.logger.Error("ANALYZER", "Failed to marshal feed update", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("ANALYZER", "Failed to publish feed update", map[string]interface{}{
			"session_id": update.SessionId,
			"error":      err.Error(),
		})
	}
}

// step runs op and packages its batch together with the insights whose
// text was not on display before. It returns nil when op produced nothing.
// The caller holds the session lock.
func step(sessionId string, a *analyzer.Analyzer, op func() []analyzer.Insight) *dto.FeedUpdateMessage {
	shown := make(map[string]struct{})
	for _, in := range a.Feed() {
		shown[in.Text] = struct{}{}
	}

	batch := op()
	if len(batch) == 0 {
		return nil
	}

	fresh := make([]analyzer.Insight, 0, len(batch))
	for _, in := range batch {
		if _, ok := shown[in.Text]; !ok {
			fresh = append(fresh, in)
		}
	}
	return &dto.FeedUpdateMessage{
		SessionId: sessionId,
		Active:    a.Active(),
		Batch:     batch,
		Fresh:     fresh,
		Feed:      a.Feed(),
	}
}

func snapshot(sessionId string, a *analyzer.Analyzer) *dto.AnalyzerSnapshotResponse {
	return &dto.AnalyzerSnapshotResponse{SessionId: sessionId, Snapshot: a.Snapshot()}
}
