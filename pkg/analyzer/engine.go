package analyzer

import (
	"fmt"
	"time"
)

// DefaultBatchSize caps the insights emitted by one evaluation.
const DefaultBatchSize = 2

// Insight is one observation produced by the rule engine.
type Insight struct {
	ID        string    `json:"id"`
	Prefix    string    `json:"prefix"`
	Text      string    `json:"text"`
	Emphasis  string    `json:"emphasis"`
	Timestamp time.Time `json:"timestamp"`
	Condition bool      `json:"condition"`
}

// Engine evaluates an ordered rule list against derived metrics.
type Engine struct {
	rules     []Rule
	batchSize int
	cache     *PatternCache
	produced  int
}

func NewEngine(rules []Rule, batchSize int, cache *PatternCache) *Engine {
	if rules == nil {
		rules = DefaultRules
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Engine{rules: rules, batchSize: batchSize, cache: cache}
}

// Evaluate returns the first matching rules, in rule order, as insights.
// It returns nil when no category is active.
func (e *Engine) Evaluate(s *MetricStore, now time.Time) []Insight {
	m, ok := Derive(s, e.cache, now)
	if !ok {
		return nil
	}
	return e.Apply(m, now)
}

// Apply runs the rules over already derived metrics.
func (e *Engine) Apply(m Metrics, now time.Time) []Insight {
	batch := make([]Insight, 0, e.batchSize)
	for _, r := range e.rules {
		if len(batch) == e.batchSize {
			break
		}
		if !r.Match(m) {
			continue
		}
		e.produced++
		batch = append(batch, Insight{
			ID:        fmt.Sprintf("%03d", e.produced),
			Prefix:    r.Prefix,
			Text:      r.Text(m),
			Emphasis:  r.Emphasis(m),
			Timestamp: now,
			Condition: true,
		})
	}
	return batch
}

// Produced is the number of insights generated so far.
func (e *Engine) Produced() int { return e.produced }
