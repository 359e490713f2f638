package analyzer

import (
	"math"
	"time"
)

// Metrics are the quantities derived from a MetricStore for the active
// category at one evaluation.
type Metrics struct {
	Category             string
	CurrentTime          int
	TotalHoverTime       int
	Share                float64
	Percentage           float64
	Frequency            int
	SinceLastInteraction time.Duration
	SessionDuration      time.Duration
	EngagementScore      float64
	SequenceKey          string
	ImmediateRepeat      bool
	NovelSequence        bool
	DistinctCategories   int
}

// Derive computes Metrics for the active category. Novel sequence signatures
// are recorded in cache as a side effect. It returns false when nothing is
// active.
func Derive(s *MetricStore, cache *PatternCache, now time.Time) (Metrics, bool) {
	c := s.Active()
	if c == "" {
		return Metrics{}, false
	}

	m := Metrics{
		Category:           c,
		CurrentTime:        s.HoverTime(c),
		TotalHoverTime:     s.TotalHoverTime(),
		Frequency:          s.Frequency(c),
		SessionDuration:    now.Sub(s.SessionStart()),
		DistinctCategories: s.DistinctInteracted(),
	}
	if m.TotalHoverTime > 0 {
		m.Share = float64(m.CurrentTime) / float64(m.TotalHoverTime)
		m.Percentage = m.Share * 100
	}
	if last := s.LastInteraction(c); !last.IsZero() {
		m.SinceLastInteraction = now.Sub(last)
	}

	seconds := float64(m.SinceLastInteraction) / float64(time.Second)
	m.EngagementScore = m.Share * math.Log(1+float64(m.Frequency)) / math.Sqrt(1+seconds)

	m.SequenceKey = s.Log().Signature()
	m.ImmediateRepeat = s.Log().HasConsecutive(c)
	m.NovelSequence = cache.Observe(m.SequenceKey)
	return m, true
}

// roundHalfUp rounds like a browser's Math.round for non-negative values.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
