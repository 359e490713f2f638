package analyzer

import "time"

type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixedRand struct{ v int }

func (r fixedRand) Intn(n int) int { return r.v % n }

func newTestAnalyzer(clock *fakeClock) *Analyzer {
	return New(Options{Clock: clock, Random: fixedRand{v: 4}})
}

// tickN advances the clock by one tick interval before every tick and
// returns the batch produced by the last one.
func tickN(a *Analyzer, clock *fakeClock, n int) []Insight {
	var last []Insight
	for i := 0; i < n; i++ {
		clock.Advance(DefaultTickInterval)
		last = a.Tick()
	}
	return last
}

func prefixes(batch []Insight) []string {
	out := make([]string, len(batch))
	for i, in := range batch {
		out[i] = in.Prefix
	}
	return out
}
