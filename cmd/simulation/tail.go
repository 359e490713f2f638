package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"imagine-algorithm/pkg/events"
	pktNats "imagine-algorithm/pkg/nats"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var typeColors = map[string]*color.Color{
	events.TypeHoverStarted:     color.New(color.FgYellow),
	events.TypeInsightGenerated: color.New(color.FgMagenta, color.Bold),
	events.TypeCategoryAdded:    color.New(color.FgGreen),
	events.TypeBoardChanged:     color.New(color.FgBlue),
	events.TypeQuestionnaireEnd: color.New(color.FgCyan, color.Bold),
}

func defaultNatsURL() string {
	if url := os.Getenv("NATS_URL"); url != "" {
		return url
	}
	return "nats://localhost:4222"
}

func newTailCommand() *cobra.Command {
	var (
		natsURL string
		filter  string
		durable string
	)

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print analytics events published by a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := pktNats.NewSubscriber(natsURL)
			if err != nil {
				return err
			}
			defer sub.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			err = sub.Subscribe(ctx, filter, durable, func(_ context.Context, e events.Event) error {
				printEvent(out, e)
				return nil
			})
			if err != nil {
				return err
			}

			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats", defaultNatsURL(), "NATS server URL")
	cmd.Flags().StringVar(&filter, "filter", pktNats.SubjectPrefix+".>", "Subject filter")
	cmd.Flags().StringVar(&durable, "durable", "imagine-sim-tail", "Durable consumer name")
	return cmd
}

func printEvent(w io.Writer, e events.Event) {
	c, ok := typeColors[e.EventType()]
	if !ok {
		c = color.New(color.FgWhite)
	}

	payload := e.Payload()
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]string, len(keys))
	for i, k := range keys {
		fields[i] = fmt.Sprintf("%s=%v", k, payload[k])
	}

	fmt.Fprintf(w, "%s ", e.Timestamp().Format("15:04:05.000"))
	c.Fprintf(w, "%-24s", e.EventType())
	fmt.Fprintf(w, " %s\n", strings.Join(fields, " "))
}
