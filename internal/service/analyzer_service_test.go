package service

import (
	"context"
	"testing"
	"time"

	"imagine-algorithm/internal/dto"
	"imagine-algorithm/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mourning = "Online mourning rituals"

func TestAnalyzerService_HoverStartProducesInsights(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	sid := uuid.New()

	res := f.analyzer.HoverStart(ctx, sid.String(), &dto.HoverStartRequest{Category: mourning})

	require.Len(t, res.Insights, 2)
	assert.Equal(t, "New", res.Insights[0].Prefix)
	assert.Equal(t, "Novel", res.Insights[1].Prefix)
	assert.Equal(t, mourning, res.State.Active)
	assert.Len(t, res.State.Feed, 2)
	assert.Len(t, f.events.ofType(events.TypeHoverStarted), 1)

	require.Eventually(t, func() bool { return f.delivery.count(sid) == 1 }, time.Second, 5*time.Millisecond)
	assert.Len(t, f.events.ofType(events.TypeInsightGenerated), 2)
}

func TestAnalyzerService_RepeatAndUnknownHoverAreNoOps(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	sid := uuid.NewString()

	f.analyzer.HoverStart(ctx, sid, &dto.HoverStartRequest{Category: mourning})
	again := f.analyzer.HoverStart(ctx, sid, &dto.HoverStartRequest{Category: mourning})
	unknown := f.analyzer.HoverStart(ctx, sid, &dto.HoverStartRequest{Category: "Nope"})

	assert.Empty(t, again.Insights)
	assert.Empty(t, unknown.Insights)
	assert.Equal(t, mourning, unknown.State.Active)
	assert.Len(t, f.events.ofType(events.TypeHoverStarted), 1)
}

func TestAnalyzerService_TickLoopAccumulatesHoverTime(t *testing.T) {
	f := newFixture(t, 2*time.Millisecond)
	ctx := context.Background()
	sid := uuid.New()

	f.analyzer.HoverStart(ctx, sid.String(), &dto.HoverStartRequest{Category: mourning})

	require.Eventually(t, func() bool {
		return f.analyzer.Snapshot(ctx, sid.String()).TotalHoverTicks >= 5
	}, 2*time.Second, 5*time.Millisecond)

	snap := f.analyzer.Snapshot(ctx, sid.String())
	assert.GreaterOrEqual(t, snap.ElapsedTicks, snap.TotalHoverTicks)
	assert.Equal(t, 100, snap.Breakdown[0].Percentage)
	// Every tick while hovering pushes the feed.
	assert.Greater(t, f.delivery.count(sid), 1)

	ended := f.analyzer.HoverEnd(ctx, sid.String(), &dto.HoverEndRequest{Category: mourning})
	assert.Empty(t, ended.Active)
	frozen := ended.TotalHoverTicks

	require.Eventually(t, func() bool {
		return f.analyzer.Snapshot(ctx, sid.String()).ElapsedTicks > ended.ElapsedTicks+3
	}, 2*time.Second, 5*time.Millisecond, "session time keeps running without a hover")
	assert.Equal(t, frozen, f.analyzer.Snapshot(ctx, sid.String()).TotalHoverTicks)
}

func TestAnalyzerService_LateHoverEndDoesNotClearNextCategory(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	sid := uuid.NewString()
	const comfort = "Digital comfort gestures"

	f.analyzer.HoverStart(ctx, sid, &dto.HoverStartRequest{Category: mourning})
	f.analyzer.HoverStart(ctx, sid, &dto.HoverStartRequest{Category: comfort})
	res := f.analyzer.HoverEnd(ctx, sid, &dto.HoverEndRequest{Category: mourning})

	assert.Equal(t, comfort, res.Active)
	assert.Equal(t, comfort, f.analyzer.Snapshot(ctx, sid).Active)

	res = f.analyzer.HoverEnd(ctx, sid, &dto.HoverEndRequest{Category: comfort})
	assert.Empty(t, res.Active)
}

func TestAnalyzerService_ShutdownStopsTicking(t *testing.T) {
	f := newFixture(t, 2*time.Millisecond)
	ctx := context.Background()
	sid := uuid.NewString()

	require.Eventually(t, func() bool {
		return f.analyzer.Snapshot(ctx, sid).ElapsedTicks > 2
	}, 2*time.Second, 5*time.Millisecond)

	f.analyzer.Shutdown()
	time.Sleep(20 * time.Millisecond)
	stopped := f.analyzer.Snapshot(ctx, sid).ElapsedTicks
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, f.analyzer.Snapshot(ctx, sid).ElapsedTicks)
}

func TestAnalyzerService_AddCategory(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	sid := uuid.NewString()

	res := f.analyzer.AddCategory(ctx, sid, &dto.AddCategoryRequest{Name: "  Late night scrolling "})
	require.True(t, res.Added)
	require.Len(t, res.State.Categories, 5)
	assert.Equal(t, "Late night scrolling", res.State.Categories[4].Name)

	dup := f.analyzer.AddCategory(ctx, sid, &dto.AddCategoryRequest{Name: "Late night scrolling"})
	assert.False(t, dup.Added)
	assert.Len(t, f.events.ofType(events.TypeCategoryAdded), 1)
}

func TestAnalyzerService_Category(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	sid := uuid.NewString()

	c, err := f.analyzer.Category(ctx, sid, mourning)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Points)
	assert.InDelta(t, 0.7, c.OverlayScale, 1e-9)

	_, err = f.analyzer.Category(ctx, sid, "Nope")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestAnalyzerService_SessionsAreIsolated(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	a, b := uuid.NewString(), uuid.NewString()

	f.analyzer.HoverStart(ctx, a, &dto.HoverStartRequest{Category: mourning})

	assert.Equal(t, mourning, f.analyzer.Snapshot(ctx, a).Active)
	assert.Empty(t, f.analyzer.Snapshot(ctx, b).Active)
	assert.Equal(t, 2, f.sessions.Count())
}
