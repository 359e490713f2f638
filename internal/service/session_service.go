package service

import (
	"math/rand"
	"time"

	"imagine-algorithm/internal/config"
	"imagine-algorithm/internal/metrics"
	"imagine-algorithm/internal/pkg/logger"
	"imagine-algorithm/internal/repository/memory"
	"imagine-algorithm/pkg/analyzer"
	"imagine-algorithm/pkg/board"
	"imagine-algorithm/pkg/questionnaire"
	"imagine-algorithm/pkg/store"

	"github.com/google/uuid"
)

type ISessionService interface {
	// Acquire returns the state for sessionID, creating it on first use.
	Acquire(sessionID string) *store.Session
	Count() int
	Shutdown()
}

// SessionFactory builds the initial state of a new session.
type SessionFactory func(id string) *store.Session

type sessionService struct {
	repo    *memory.SessionRepository
	factory SessionFactory
	metrics *metrics.Metrics
	logger  logger.ILogger
}

func NewSessionService(cfg config.Config, factory SessionFactory, m *metrics.Metrics, log logger.ILogger) ISessionService {
	s := &sessionService{
		factory: factory,
		metrics: m,
		logger:  log,
	}
	s.repo = memory.NewSessionRepository(cfg.Session.TTL, s.onEvict)
	return s
}

// DefaultSessionFactory wires production dependencies: wall clock, a
// time-seeded random source and uuid item ids.
func DefaultSessionFactory(cfg config.AnalyzerConfig) SessionFactory {
	return func(id string) *store.Session {
		a := analyzer.New(analyzer.Options{
			Clock:            analyzer.SystemClock{},
			Random:           analyzer.NewRandomSource(rand.Int63()),
			FeedLimit:        cfg.FeedLimit,
			PatternCacheSize: cfg.PatternCacheSize,
		})
		return store.NewSession(id, time.Now(), a,
			board.New(board.SeedColumns, uuid.NewString),
			questionnaire.New(questionnaire.Questions),
		)
	}
}

func (s *sessionService) Acquire(sessionID string) *store.Session {
	sess, created := s.repo.GetOrCreate(sessionID, func() *store.Session {
		return s.factory(sessionID)
	})
	if created {
		s.metrics.SessionsCreated.Inc()
		s.metrics.SessionsActive.Inc()
		s.logger.Debug("SESSION", "Session created", map[string]interface{}{"session_id": sessionID})
	}
	return sess
}

func (s *sessionService) onEvict(sess *store.Session) {
	s.metrics.SessionsActive.Dec()
	s.logger.Debug("SESSION", "Session evicted", map[string]interface{}{
		"session_id": sess.ID,
		"age":        time.Since(sess.CreatedAt).String(),
	})
}

func (s *sessionService) Count() int {
	return s.repo.Count()
}

func (s *sessionService) Shutdown() {
	s.repo.Flush()
}
