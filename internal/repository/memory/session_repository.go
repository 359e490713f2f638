package memory

import (
	"time"

	"imagine-algorithm/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps browser sessions in memory with a sliding TTL.
// Expired or deleted sessions are closed before onEvict sees them.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration, onEvict func(*store.Session)) *SessionRepository {
	c := cache.New(ttl, ttl/6+time.Second)
	c.OnEvicted(func(_ string, v interface{}) {
		s := v.(*store.Session)
		s.Close()
		if onEvict != nil {
			onEvict(s)
		}
	})
	return &SessionRepository{cache: c}
}

// GetOrCreate returns the session for id, building one with create if
// none exists. created reports whether create's session was stored.
func (r *SessionRepository) GetOrCreate(id string, create func() *store.Session) (s *store.Session, created bool) {
	if s, ok := r.Get(id); ok {
		return s, false
	}
	fresh := create()
	for {
		if err := r.cache.Add(id, fresh, cache.DefaultExpiration); err == nil {
			return fresh, true
		}
		// Lost a race with a concurrent request for the same id. If the
		// winner is already gone again, retry with fresh still open.
		if s, ok := r.Get(id); ok {
			fresh.Close()
			return s, false
		}
	}
}

// Get returns the session and pushes its expiry out.
func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	x, found := r.cache.Get(sessionID)
	if !found {
		return nil, false
	}
	s := x.(*store.Session)
	r.cache.SetDefault(sessionID, s)
	return s, true
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}

// Flush closes every session, for shutdown.
func (r *SessionRepository) Flush() {
	for id := range r.cache.Items() {
		r.cache.Delete(id)
	}
}
