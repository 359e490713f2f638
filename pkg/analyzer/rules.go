package analyzer

import (
	"fmt"
	"time"
)

// Rule turns a condition over Metrics into an insight.
type Rule struct {
	Prefix   string
	Match    func(m Metrics) bool
	Text     func(m Metrics) string
	Emphasis func(m Metrics) string
}

func seconds(ticks int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)/10)
}

func fixed(s string) func(Metrics) string {
	return func(Metrics) string { return s }
}

// DefaultRules are evaluated in order; earlier rules take priority.
var DefaultRules = []Rule{
	{
		Prefix:   "Critical",
		Match:    func(m Metrics) bool { return m.EngagementScore > 0.5 },
		Text:     func(m Metrics) string { return "High engagement with " + m.Category },
		Emphasis: func(m Metrics) string { return fmt.Sprintf("score %.2f", m.EngagementScore) },
	},
	{
		Prefix:   "Dominant",
		Match:    func(m Metrics) bool { return m.CurrentTime > 50 && m.Percentage > 40 },
		Text:     func(m Metrics) string { return m.Category + " is primary focus" },
		Emphasis: func(m Metrics) string { return fmt.Sprintf("%d%% focus", roundHalfUp(m.Percentage)) },
	},
	{
		Prefix:   "Pattern",
		Match:    func(m Metrics) bool { return m.ImmediateRepeat && m.Frequency > 3 },
		Text:     func(m Metrics) string { return "Recurring interest in " + m.Category },
		Emphasis: func(m Metrics) string { return fmt.Sprintf("%dx returns", m.Frequency) },
	},
	{
		Prefix: "Focused",
		Match: func(m Metrics) bool {
			return m.SinceLastInteraction < 2*time.Second && m.CurrentTime > 30
		},
		Text:     func(m Metrics) string { return "Deep dive into " + m.Category },
		Emphasis: func(m Metrics) string { return seconds(m.CurrentTime) + " study" },
	},
	{
		Prefix: "Exploratory",
		Match: func(m Metrics) bool {
			return m.SessionDuration > 30*time.Second && m.CurrentTime < 10
		},
		Text:     func(m Metrics) string { return "Brief scanning of " + m.Category },
		Emphasis: fixed("quick view"),
	},
	{
		Prefix:   "New",
		Match:    func(m Metrics) bool { return m.Frequency == 1 },
		Text:     func(m Metrics) string { return "First interaction with " + m.Category },
		Emphasis: fixed("discovery"),
	},
	{
		Prefix:   "Novel",
		Match:    func(m Metrics) bool { return m.NovelSequence },
		Text:     func(m Metrics) string { return "Unique navigation through " + m.Category },
		Emphasis: fixed("sequence"),
	},
	{
		Prefix:   "Diverse",
		Match:    func(m Metrics) bool { return m.DistinctCategories > 5 },
		Text:     func(m Metrics) string { return "Broad exploration including " + m.Category },
		Emphasis: func(m Metrics) string { return fmt.Sprintf("%d categories", m.DistinctCategories) },
	},
	{
		Prefix:   "Fixated",
		Match:    func(m Metrics) bool { return m.Percentage > 60 && m.TotalHoverTime > 100 },
		Text:     func(m Metrics) string { return m.Category + " dominates session" },
		Emphasis: func(m Metrics) string { return fmt.Sprintf("%d%% attention", roundHalfUp(m.Percentage)) },
	},
	{
		Prefix:   "Active",
		Match:    func(Metrics) bool { return true },
		Text:     func(m Metrics) string { return "Interaction with " + m.Category },
		Emphasis: func(m Metrics) string { return seconds(m.CurrentTime) },
	},
}
