package analyzer

import (
	"strings"
	"time"
)

// Category is a named hover target on the analyzer grid.
type Category struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// SeedCategories is the fixed set every session starts with.
var SeedCategories = []Category{
	{Name: "Online mourning rituals", Points: 5},
	{Name: "Digital comfort gestures", Points: 6},
	{Name: "Stressed typing patterns", Points: 7},
	{Name: "Online ritual participation", Points: 4},
}

const (
	minPoints   = 3
	pointsRange = 7
)

// MetricStore holds the rolling interaction statistics of one session.
// It is not safe for concurrent use.
type MetricStore struct {
	clock  Clock
	random RandomSource

	categories      []Category
	index           map[string]int
	hoverTimes      map[string]int
	frequency       map[string]int
	lastInteraction map[string]time.Time
	log             *InteractionLog

	active       string
	elapsed      int
	sessionStart time.Time
}

func NewMetricStore(clock Clock, random RandomSource, seed []Category, logCapacity int) *MetricStore {
	s := &MetricStore{
		clock:           clock,
		random:          random,
		index:           make(map[string]int),
		hoverTimes:      make(map[string]int),
		frequency:       make(map[string]int),
		lastInteraction: make(map[string]time.Time),
		log:             NewInteractionLog(logCapacity),
		sessionStart:    clock.Now(),
	}
	for _, c := range seed {
		s.insert(c)
	}
	return s
}

func (s *MetricStore) insert(c Category) {
	s.index[c.Name] = len(s.categories)
	s.categories = append(s.categories, c)
	s.hoverTimes[c.Name] = 0
}

// HoverStart marks category as active and records the interaction.
// Unknown categories and re-entering the active category are ignored.
func (s *MetricStore) HoverStart(category string) bool {
	if _, ok := s.index[category]; !ok || category == s.active {
		return false
	}
	now := s.clock.Now()
	s.active = category
	s.lastInteraction[category] = now
	s.log.Append(Interaction{Category: category, Timestamp: now})
	s.frequency[category]++
	return true
}

// HoverEnd clears the active category. A non-empty category must name
// the active one, otherwise the call is a no-op: a leave that arrives
// after the pointer already entered the next tile does not end that hover.
func (s *MetricStore) HoverEnd(category string) bool {
	if s.active == "" || (category != "" && category != s.active) {
		return false
	}
	s.active = ""
	return true
}

// Tick advances elapsed session time by one unit and, if a category is
// active, its hover time too. It reports whether a hover time changed.
func (s *MetricStore) Tick() bool {
	s.elapsed++
	if s.active == "" {
		return false
	}
	s.hoverTimes[s.active]++
	return true
}

// AddCategory inserts name with a random point count. Empty and duplicate
// names are ignored.
func (s *MetricStore) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if _, ok := s.index[name]; ok {
		return false
	}
	s.insert(Category{Name: name, Points: minPoints + s.random.Intn(pointsRange)})
	return true
}

func (s *MetricStore) Active() string { return s.active }

// Elapsed is the number of ticks since the session started.
func (s *MetricStore) Elapsed() int { return s.elapsed }

func (s *MetricStore) SessionStart() time.Time { return s.sessionStart }

func (s *MetricStore) HoverTime(category string) int { return s.hoverTimes[category] }

func (s *MetricStore) Frequency(category string) int { return s.frequency[category] }

// LastInteraction returns the last hover-start time of category, or the
// zero time if it was never hovered.
func (s *MetricStore) LastInteraction(category string) time.Time {
	return s.lastInteraction[category]
}

// TotalHoverTime sums hover time across all categories.
func (s *MetricStore) TotalHoverTime() int {
	total := 0
	for _, t := range s.hoverTimes {
		total += t
	}
	return total
}

// DistinctInteracted counts the categories hovered at least once.
func (s *MetricStore) DistinctInteracted() int { return len(s.frequency) }

// Categories returns the categories in insertion order.
func (s *MetricStore) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *MetricStore) Log() *InteractionLog { return s.log }
