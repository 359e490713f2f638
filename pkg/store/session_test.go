package store

import (
	"context"
	"strconv"
	"testing"
	"time"

	"imagine-algorithm/pkg/analyzer"
	"imagine-algorithm/pkg/board"
	"imagine-algorithm/pkg/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *Session {
	n := 0
	ids := func() string { n++; return "x" + strconv.Itoa(n) }
	return NewSession("s1", time.Now(),
		analyzer.New(analyzer.Options{Random: analyzer.NewRandomSource(1)}),
		board.New(board.SeedColumns, ids),
		questionnaire.New(questionnaire.Questions),
	)
}

func TestSession_RestartStopsPrevious(t *testing.T) {
	s := newSession()
	assert.False(t, s.Ticking())

	var first, second context.Context
	require.True(t, s.RestartTicker(func() context.CancelFunc {
		var cancel context.CancelFunc
		first, cancel = context.WithCancel(context.Background())
		return cancel
	}))
	require.True(t, s.RestartTicker(func() context.CancelFunc {
		var cancel context.CancelFunc
		second, cancel = context.WithCancel(context.Background())
		return cancel
	}))

	assert.Error(t, first.Err())
	assert.NoError(t, second.Err())
	assert.True(t, s.Ticking())

	s.Close()
	assert.Error(t, second.Err())
	assert.True(t, s.Closed())
	assert.False(t, s.RestartTicker(func() context.CancelFunc {
		t.Fatal("closed session must not start a ticker")
		return nil
	}))
}

func TestSession_DoAndRestart(t *testing.T) {
	s := newSession()
	started := 0
	start := func() context.CancelFunc {
		started++
		return func() {}
	}

	s.DoAndRestart(func(st State) bool {
		return st.Analyzer.HoverStart("Online mourning rituals") != nil
	}, start)
	s.DoAndRestart(func(st State) bool {
		return st.Analyzer.HoverStart("Online mourning rituals") != nil
	}, start)

	assert.Equal(t, 1, started, "re-hovering the active category is not a change")
	s.Do(func(st State) {
		assert.Equal(t, "Online mourning rituals", st.Analyzer.Active())
		assert.Len(t, st.Board.Columns(), 3)
		assert.Equal(t, 1, st.Questionnaire.View().Step)
	})
}
