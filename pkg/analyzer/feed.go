package analyzer

// DefaultFeedLimit is the number of insights kept on display.
const DefaultFeedLimit = 25

// Feed is the displayed, deduplicated list of insights, newest first.
type Feed struct {
	limit int
	items []Insight
}

func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	return &Feed{limit: limit}
}

// Merge drops displayed insights whose text matches one in batch, prepends
// batch and truncates to the feed limit. It reports whether anything changed.
func (f *Feed) Merge(batch []Insight) bool {
	if len(batch) == 0 {
		return false
	}
	texts := make(map[string]struct{}, len(batch))
	for _, in := range batch {
		texts[in.Text] = struct{}{}
	}

	merged := make([]Insight, 0, len(batch)+len(f.items))
	merged = append(merged, batch...)
	for _, in := range f.items {
		if _, dup := texts[in.Text]; dup {
			continue
		}
		merged = append(merged, in)
	}
	if len(merged) > f.limit {
		merged = merged[:f.limit]
	}
	f.items = merged
	return true
}

// Items returns a copy of the displayed insights.
func (f *Feed) Items() []Insight {
	out := make([]Insight, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Feed) Len() int { return len(f.items) }
