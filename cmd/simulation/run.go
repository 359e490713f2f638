package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"imagine-algorithm/pkg/analyzer"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const defaultScript = "Online mourning rituals:40," +
	"Digital comfort gestures:8," +
	"Online mourning rituals:70," +
	"-:20," +
	"+Late night scrolling," +
	"Late night scrolling:35," +
	"Stressed typing patterns:5," +
	"Online ritual participation:12," +
	"Online mourning rituals:60"

var errEmptyScript = errors.New("script has no steps")

type stepKind int

const (
	stepHover stepKind = iota
	stepIdle
	stepAdd
)

type step struct {
	Kind     stepKind
	Category string
	Ticks    int
}

// parseScript reads comma separated steps: "name:ticks" hovers name for
// ticks, "-:ticks" leaves the pointer off every glyph and "+name" adds a
// category.
func parseScript(script string) ([]step, error) {
	var steps []step
	for _, raw := range strings.Split(script, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if name, ok := strings.CutPrefix(raw, "+"); ok {
			steps = append(steps, step{Kind: stepAdd, Category: strings.TrimSpace(name)})
			continue
		}

		i := strings.LastIndex(raw, ":")
		if i < 0 {
			return nil, fmt.Errorf("step %q: want name:ticks", raw)
		}
		ticks, err := strconv.Atoi(raw[i+1:])
		if err != nil || ticks < 0 {
			return nil, fmt.Errorf("step %q: invalid tick count", raw)
		}

		name := strings.TrimSpace(raw[:i])
		if name == "-" {
			steps = append(steps, step{Kind: stepIdle, Ticks: ticks})
		} else {
			steps = append(steps, step{Kind: stepHover, Category: name, Ticks: ticks})
		}
	}
	if len(steps) == 0 {
		return nil, errEmptyScript
	}
	return steps, nil
}

// simClock moves only when the simulation ticks.
type simClock struct{ now time.Time }

func (c *simClock) Now() time.Time { return c.now }

func newRunCommand() *cobra.Command {
	var (
		script string
		seed   int64
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a scripted hover session and print the insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseScript(script)
			if err != nil {
				return err
			}
			simulate(cmd.OutOrStdout(), steps, seed, quiet)
			return nil
		},
	}

	cmd.Flags().StringVar(&script, "script", defaultScript, `Steps: "name:ticks", "-:ticks" (idle) or "+name" (add category)`)
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for category points and the user number")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final feed and breakdown")
	return cmd
}

func simulate(w io.Writer, steps []step, seed int64, quiet bool) analyzer.Snapshot {
	clock := &simClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	a := analyzer.New(analyzer.Options{
		Clock:  clock,
		Random: analyzer.NewRandomSource(seed),
	})

	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	header.Fprintf(w, "User #%d\n", a.UserNumber())

	emit := func(batch []analyzer.Insight) {
		if quiet {
			return
		}
		for _, in := range batch {
			printInsight(w, clock.now, in)
		}
	}

	for _, s := range steps {
		switch s.Kind {
		case stepAdd:
			if a.AddCategory(s.Category) {
				color.New(color.FgGreen).Fprintf(w, "+ added %q\n", s.Category)
			} else {
				dim.Fprintf(w, "+ skipped %q\n", s.Category)
			}
			continue
		case stepIdle:
			a.HoverEnd("")
			if !quiet {
				dim.Fprintf(w, "~ idle for %d ticks\n", s.Ticks)
			}
		case stepHover:
			if !quiet {
				color.New(color.FgYellow).Fprintf(w, "> hover %q for %d ticks\n", s.Category, s.Ticks)
			}
			emit(a.HoverStart(s.Category))
		}

		for i := 0; i < s.Ticks; i++ {
			clock.now = clock.now.Add(analyzer.DefaultTickInterval)
			emit(a.Tick())
		}
	}

	snap := a.Snapshot()
	printSummary(w, snap)
	return snap
}

var prefixColors = map[string]*color.Color{
	"Critical":    color.New(color.FgRed, color.Bold),
	"Dominant":    color.New(color.FgMagenta, color.Bold),
	"Fixated":     color.New(color.FgMagenta),
	"Pattern":     color.New(color.FgCyan),
	"Focused":     color.New(color.FgBlue),
	"New":         color.New(color.FgGreen, color.Bold),
	"Novel":       color.New(color.FgGreen),
	"Exploratory": color.New(color.FgYellow),
	"Diverse":     color.New(color.FgYellow),
}

func printInsight(w io.Writer, at time.Time, in analyzer.Insight) {
	c, ok := prefixColors[in.Prefix]
	if !ok {
		c = color.New(color.FgWhite)
	}
	fmt.Fprintf(w, "  %s ", at.Format("15:04:05.0"))
	c.Fprintf(w, "%-11s", in.Prefix)
	fmt.Fprintf(w, " %s ", in.Text)
	color.New(color.Faint).Fprintf(w, "(%s)\n", in.Emphasis)
}

func printSummary(w io.Writer, snap analyzer.Snapshot) {
	header := color.New(color.FgCyan, color.Bold)

	header.Fprintf(w, "\nFeed (%d)\n", len(snap.Feed))
	for _, in := range snap.Feed {
		printInsight(w, in.Timestamp, in)
	}

	header.Fprintf(w, "\nBreakdown after %s\n", elapsed(snap.ElapsedTicks))
	for _, share := range snap.Breakdown {
		bar := strings.Repeat("█", share.Percentage/4)
		fmt.Fprintf(w, "  %-30s %3d%% %s\n", share.Category, share.Percentage, color.GreenString(bar))
	}
}

func elapsed(ticks int) string {
	return (time.Duration(ticks) * analyzer.DefaultTickInterval).String()
}
