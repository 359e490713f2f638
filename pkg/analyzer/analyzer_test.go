package analyzer

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	mourning = "Online mourning rituals"
	comfort  = "Digital comfort gestures"
	stressed = "Stressed typing patterns"
	ritual   = "Online ritual participation"
)

func TestAnalyzer_ContinuousHoverOnSingleCategory(t *testing.T) {
	clock := newFakeClock()
	a := newTestAnalyzer(clock)

	batch := a.HoverStart(stressed)
	assert.Equal(t, []string{"New", "Novel"}, prefixes(batch))

	batch = tickN(a, clock, 1)
	assert.Equal(t, []string{"Critical", "New"}, prefixes(batch))

	batch = tickN(a, clock, 59)
	assert.Equal(t, []string{"Dominant", "New"}, prefixes(batch))

	snap := a.Snapshot()
	assert.Equal(t, 60, snap.TotalHoverTicks)
	assert.Equal(t, 1, a.Store().Frequency(stressed))
	assert.Equal(t, stressed, snap.Breakdown[0].Category)
	assert.Equal(t, 100, snap.Breakdown[0].Percentage)

	m, ok := Derive(a.Store(), NewPatternCache(0), clock.Now())
	require.True(t, ok)
	assert.InDelta(t, 100, m.Percentage, 1e-9)
	assert.InDelta(t, math.Ln2/math.Sqrt(7), m.EngagementScore, 1e-9)
}

func TestAnalyzer_FeedShowsLatestOccurrenceOnly(t *testing.T) {
	clock := newFakeClock()
	a := newTestAnalyzer(clock)

	a.HoverStart(stressed)
	tickN(a, clock, 80)

	seen := map[string]int{}
	for _, in := range a.Feed() {
		seen[in.Text]++
	}
	for text, n := range seen {
		assert.Equal(t, 1, n, text)
	}
	assert.Equal(t, "Dominant", a.Feed()[0].Prefix)
}

func TestAnalyzer_FirstInteractionAlwaysReportedEarlyInSession(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := newFakeClock()
		a := newTestAnalyzer(clock)
		cats := []string{mourning, comfort, stressed, ritual}
		order := rapid.Permutation(cats).Draw(t, "order")
		ticks := rapid.SliceOfN(rapid.IntRange(0, 60), len(cats), len(cats)).Draw(t, "ticks")

		for i, c := range order {
			batch := a.HoverStart(c)
			checkFirst(t, batch, c)
			for j := 0; j < ticks[i]; j++ {
				clock.Advance(DefaultTickInterval)
				checkFirst(t, a.Tick(), c)
			}
			a.HoverEnd("")
		}
	})
}

// Past 30s a first hover is also Exploratory, and one tick later Critical,
// so the two-slot batch no longer has room for New.
func TestAnalyzer_FirstInteractionCrowdedOutLateInSession(t *testing.T) {
	clock := newFakeClock()
	a := newTestAnalyzer(clock)
	tickN(a, clock, 310)

	batch := a.HoverStart(stressed)
	assert.Equal(t, []string{"Exploratory", "New"}, prefixes(batch))

	batch = tickN(a, clock, 1)
	assert.Equal(t, 1, a.Store().Frequency(stressed))
	assert.Equal(t, []string{"Critical", "Exploratory"}, prefixes(batch))
	assert.NotContains(t, prefixes(batch), "New")
}

func checkFirst(t *rapid.T, batch []Insight, c string) {
	if len(batch) > DefaultBatchSize {
		t.Fatalf("batch of %d", len(batch))
	}
	for _, in := range batch {
		if in.Prefix == "New" && strings.HasSuffix(in.Text, c) {
			return
		}
	}
	t.Fatalf("first interaction with %q missing from %v", c, batch)
}

func TestAnalyzer_RepeatedReturnsBecomePattern(t *testing.T) {
	clock := newFakeClock()
	a := newTestAnalyzer(clock)

	visit := func(c string) []Insight {
		batch := a.HoverStart(c)
		tickN(a, clock, 2)
		a.HoverEnd("")
		clock.Advance(300 * time.Millisecond)
		return batch
	}

	for _, c := range []string{comfort, ritual, comfort, ritual, comfort} {
		batch := visit(c)
		assert.NotContains(t, prefixes(batch), "Pattern")
	}

	// comfort has three visits; a fourth straight after a third is a repeat
	batch := visit(comfort)
	assert.True(t, a.Store().Log().HasConsecutive(comfort))
	assert.Equal(t, 4, a.Store().Frequency(comfort))
	require.Contains(t, prefixes(batch), "Pattern")
	for _, in := range batch {
		if in.Prefix == "Pattern" {
			assert.Equal(t, "Recurring interest in "+comfort, in.Text)
			assert.Equal(t, "4x returns", in.Emphasis)
		}
	}
}

func TestAnalyzer_ExploratoryLateInSession(t *testing.T) {
	clock := newFakeClock()
	a := newTestAnalyzer(clock)

	a.HoverStart(mourning)
	tickN(a, clock, 200)
	a.HoverEnd("")
	clock.Advance(15 * time.Second)

	batch := a.HoverStart(comfort)
	assert.Equal(t, []string{"Exploratory", "New"}, prefixes(batch))
}

func TestAnalyzer_FixatedOnReturn(t *testing.T) {
	clock := newFakeClock()
	a := newTestAnalyzer(clock)

	a.HoverStart(ritual)
	tickN(a, clock, 50)
	a.HoverEnd("")
	a.HoverStart(ritual)
	batch := tickN(a, clock, 120)

	assert.Equal(t, []string{"Dominant", "Fixated"}, prefixes(batch))
}

func TestAnalyzer_DiverseAfterSixCategories(t *testing.T) {
	clock := newFakeClock()
	a := newTestAnalyzer(clock)
	require.True(t, a.AddCategory("Late night scrolling"))
	require.True(t, a.AddCategory("Read receipts"))

	var batch []Insight
	for _, c := range []string{mourning, comfort, stressed, ritual, "Late night scrolling", "Read receipts"} {
		a.HoverStart(c)
		tickN(a, clock, 1)
		a.HoverEnd("")
	}
	a.HoverStart(mourning)
	batch = tickN(a, clock, 30)

	assert.Contains(t, prefixes(batch), "Diverse")
}

func TestAnalyzer_AddCategoryIgnoresEmptyAndDuplicate(t *testing.T) {
	a := newTestAnalyzer(newFakeClock())
	before := len(a.Snapshot().Categories)

	assert.False(t, a.AddCategory(""))
	assert.False(t, a.AddCategory(comfort))
	assert.Len(t, a.Snapshot().Categories, before)

	require.True(t, a.AddCategory("Read receipts"))
	snap := a.Snapshot()
	added := snap.Categories[len(snap.Categories)-1]
	assert.Equal(t, "Read receipts", added.Name)
	assert.Equal(t, 7, added.Points)
	assert.Zero(t, added.HoverTicks)
}

func TestAnalyzer_NoInsightsWithoutActiveCategory(t *testing.T) {
	clock := newFakeClock()
	a := newTestAnalyzer(clock)

	assert.Nil(t, tickN(a, clock, 5))
	assert.False(t, a.HoverEnd(""))
	assert.Empty(t, a.Feed())
	assert.Equal(t, 5, a.Snapshot().ElapsedTicks)
}

func TestAnalyzer_ZeroTotalHoverTimeIsNotNaN(t *testing.T) {
	clock := newFakeClock()
	a := newTestAnalyzer(clock)
	a.HoverStart(comfort)

	m, ok := Derive(a.Store(), NewPatternCache(0), clock.Now())
	require.True(t, ok)
	assert.False(t, math.IsNaN(m.Percentage))
	assert.False(t, math.IsNaN(m.EngagementScore))
	assert.Zero(t, m.Percentage)
}
