package store

import (
	"context"
	"sync"
	"time"

	"imagine-algorithm/pkg/analyzer"
	"imagine-algorithm/pkg/board"
	"imagine-algorithm/pkg/questionnaire"
)

// Session is the in-memory state of one browser session. All fields
// behind the lock are touched only through Do.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu            sync.Mutex
	analyzer      *analyzer.Analyzer
	board         *board.Board
	questionnaire *questionnaire.Session
	stopTick      context.CancelFunc
	closed        bool
}

// State is what a caller may touch while holding the session lock.
type State struct {
	Analyzer      *analyzer.Analyzer
	Board         *board.Board
	Questionnaire *questionnaire.Session
}

func NewSession(id string, now time.Time, a *analyzer.Analyzer, b *board.Board, q *questionnaire.Session) *Session {
	return &Session{
		ID:            id,
		CreatedAt:     now,
		analyzer:      a,
		board:         b,
		questionnaire: q,
	}
}

// Do runs fn with the session locked.
func (s *Session) Do(fn func(st State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(State{Analyzer: s.analyzer, Board: s.board, Questionnaire: s.questionnaire})
}

// RestartTicker stops the running tick loop, if any, and starts a new one
// through start. It returns false once the session is closed.
func (s *Session) RestartTicker(start func() context.CancelFunc) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restartTickerLocked(start)
}

func (s *Session) restartTickerLocked(start func() context.CancelFunc) bool {
	if s.closed {
		return false
	}
	if s.stopTick != nil {
		s.stopTick()
	}
	s.stopTick = start()
	return true
}

// DoAndRestart runs fn locked and, when fn returns true, restarts the tick
// loop before releasing the lock, so no tick can slip in between.
func (s *Session) DoAndRestart(fn func(st State) bool, start func() context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn(State{Analyzer: s.analyzer, Board: s.board, Questionnaire: s.questionnaire}) {
		s.restartTickerLocked(start)
	}
}

func (s *Session) Ticking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopTick != nil
}

// Close stops the tick loop for good.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopTick != nil {
		s.stopTick()
		s.stopTick = nil
	}
	s.closed = true
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
