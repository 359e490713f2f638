package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics_Shared(t *testing.T) {
	assert.Same(t, NewMetrics(), NewMetrics())
}

func TestRecorders(t *testing.T) {
	m := NewMetrics()

	before := testutil.ToFloat64(m.InsightsTotal.WithLabelValues("Novel"))
	m.RecordInsights("Novel", "Novel")
	assert.Equal(t, before+2, testutil.ToFloat64(m.InsightsTotal.WithLabelValues("Novel")))

	m.RecordBoardOperation("move", false)
	assert.GreaterOrEqual(t, testutil.ToFloat64(m.BoardOperations.WithLabelValues("move", "false")), 1.0)

	m.RecordEventPublished("HOVER_STARTED", true)
	assert.GreaterOrEqual(t, testutil.ToFloat64(m.EventsPublished.WithLabelValues("HOVER_STARTED", "true")), 1.0)
}
