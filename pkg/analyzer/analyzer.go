// Package analyzer implements the behavior analyzer: a metric store fed by
// hover events and a periodic tick, and a rule engine that turns the derived
// metrics into a ranked, deduplicated insight feed.
package analyzer

import "time"

// DefaultTickInterval is the wall-clock period of one tick.
const DefaultTickInterval = 100 * time.Millisecond

const userNumberRange = 100000

// Options configures an Analyzer. Zero values fall back to the defaults.
type Options struct {
	Clock            Clock
	Random           RandomSource
	Rules            []Rule
	Seed             []Category
	BatchSize        int
	FeedLimit        int
	LogCapacity      int
	PatternCacheSize int
}

// Analyzer is one session's behavior analyzer. It is not safe for
// concurrent use; callers serialize access.
type Analyzer struct {
	clock      Clock
	store      *MetricStore
	engine     *Engine
	feed       *Feed
	userNumber int
}

func New(opts Options) *Analyzer {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Random == nil {
		opts.Random = NewRandomSource(time.Now().UnixNano())
	}
	if opts.Seed == nil {
		opts.Seed = SeedCategories
	}
	if opts.PatternCacheSize == 0 {
		opts.PatternCacheSize = DefaultPatternCacheSize
	}

	return &Analyzer{
		clock:      opts.Clock,
		store:      NewMetricStore(opts.Clock, opts.Random, opts.Seed, opts.LogCapacity),
		engine:     NewEngine(opts.Rules, opts.BatchSize, NewPatternCache(opts.PatternCacheSize)),
		feed:       NewFeed(opts.FeedLimit),
		userNumber: opts.Random.Intn(userNumberRange),
	}
}

// HoverStart activates category and re-evaluates the rules. It returns the
// new insight batch, or nil if the active category did not change.
func (a *Analyzer) HoverStart(category string) []Insight {
	if !a.store.HoverStart(category) {
		return nil
	}
	return a.evaluate()
}

// HoverEnd clears the active category when it is category, or whatever is
// active when category is empty. It reports whether anything was cleared.
func (a *Analyzer) HoverEnd(category string) bool {
	return a.store.HoverEnd(category)
}

// Tick advances session time and re-evaluates when the active category's
// hover time changed.
func (a *Analyzer) Tick() []Insight {
	if !a.store.Tick() {
		return nil
	}
	return a.evaluate()
}

func (a *Analyzer) AddCategory(name string) bool {
	return a.store.AddCategory(name)
}

func (a *Analyzer) Active() string { return a.store.Active() }

func (a *Analyzer) UserNumber() int { return a.userNumber }

func (a *Analyzer) Store() *MetricStore { return a.store }

func (a *Analyzer) Feed() []Insight { return a.feed.Items() }

func (a *Analyzer) evaluate() []Insight {
	batch := a.engine.Evaluate(a.store, a.clock.Now())
	a.feed.Merge(batch)
	return batch
}

// CategoryView is the per-category state shown on the grid.
type CategoryView struct {
	Name         string  `json:"name"`
	Points       int     `json:"points"`
	HoverTicks   int     `json:"hover_ticks"`
	Frequency    int     `json:"frequency"`
	OverlayScale float64 `json:"overlay_scale"`
	Active       bool    `json:"active"`
}

// Snapshot is a read-only copy of the analyzer state.
type Snapshot struct {
	UserNumber      int            `json:"user_number"`
	Active          string         `json:"active"`
	ElapsedTicks    int            `json:"elapsed_ticks"`
	TotalHoverTicks int            `json:"total_hover_ticks"`
	Categories      []CategoryView `json:"categories"`
	Breakdown       []Share        `json:"breakdown"`
	Recent          []Interaction  `json:"recent"`
	Feed            []Insight      `json:"feed"`
}

func (a *Analyzer) Snapshot() Snapshot {
	cats := a.store.Categories()
	views := make([]CategoryView, len(cats))
	for i, c := range cats {
		hover := a.store.HoverTime(c.Name)
		views[i] = CategoryView{
			Name:         c.Name,
			Points:       c.Points,
			HoverTicks:   hover,
			Frequency:    a.store.Frequency(c.Name),
			OverlayScale: OverlayScale(hover),
			Active:       c.Name == a.store.Active(),
		}
	}
	return Snapshot{
		UserNumber:      a.userNumber,
		Active:          a.store.Active(),
		ElapsedTicks:    a.store.Elapsed(),
		TotalHoverTicks: a.store.TotalHoverTime(),
		Categories:      views,
		Breakdown:       Breakdown(cats, a.store.HoverTime),
		Recent:          a.store.Log().Entries(),
		Feed:            a.feed.Items(),
	}
}
