package analyzer

import "sort"

// BreakdownSlots is the number of categories shown in the percentage breakdown.
const BreakdownSlots = 4

// Share is one row of the percentage breakdown.
type Share struct {
	Category   string `json:"category"`
	Time       int    `json:"time"`
	Percentage int    `json:"percentage"`
}

// Breakdown returns the top categories by hover time with rounded
// percentages. Whenever the total is positive the percentages sum to exactly
// 100: the last slot absorbs the remainder, and if rounding pushed the
// earlier slots past 100 they give the excess back from the bottom up.
func Breakdown(categories []Category, hoverTimes func(string) int) []Share {
	rows := make([]Share, 0, len(categories))
	total := 0
	for _, c := range categories {
		t := hoverTimes(c.Name)
		total += t
		rows = append(rows, Share{Category: c.Name, Time: t})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Time > rows[j].Time })
	if len(rows) > BreakdownSlots {
		rows = rows[:BreakdownSlots]
	}
	if total == 0 || len(rows) == 0 {
		return rows
	}

	last := len(rows) - 1
	sum := 0
	for i := 0; i < last; i++ {
		rows[i].Percentage = roundHalfUp(float64(rows[i].Time) / float64(total) * 100)
		sum += rows[i].Percentage
	}
	for i := last - 1; sum > 100 && i >= 0; i-- {
		cut := min(sum-100, rows[i].Percentage)
		rows[i].Percentage -= cut
		sum -= cut
	}
	rows[last].Percentage = 100 - sum
	return rows
}
