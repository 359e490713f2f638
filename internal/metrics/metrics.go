package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the workshop service.
type Metrics struct {
	// Analyzer
	SessionsActive  prometheus.Gauge
	SessionsCreated prometheus.Counter
	HoverStarts     prometheus.Counter
	Ticks           prometheus.Counter
	InsightsTotal   *prometheus.CounterVec
	CategoriesAdded prometheus.Counter

	// Tools
	BoardOperations          *prometheus.CounterVec
	QuestionnaireCompletions prometheus.Counter

	// Plumbing
	EventsPublished     *prometheus.CounterVec
	FeedPushes          prometheus.Counter
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

var (
	metricsOnce   sync.Once
	sharedMetrics *Metrics
)

// NewMetrics creates and registers all collectors once per process.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		sharedMetrics = &Metrics{
			SessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "imagine_sessions_active",
				Help: "Browser sessions currently holding analyzer state",
			}),
			SessionsCreated: promauto.NewCounter(prometheus.CounterOpts{
				Name: "imagine_sessions_created_total",
				Help: "Browser sessions created",
			}),
			HoverStarts: promauto.NewCounter(prometheus.CounterOpts{
				Name: "imagine_analyzer_hover_starts_total",
				Help: "Hover-start interactions recorded",
			}),
			Ticks: promauto.NewCounter(prometheus.CounterOpts{
				Name: "imagine_analyzer_ticks_total",
				Help: "Analyzer clock ticks processed",
			}),
			InsightsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "imagine_analyzer_insights_total",
				Help: "Insights produced, by rule prefix",
			}, []string{"prefix"}),
			CategoriesAdded: promauto.NewCounter(prometheus.CounterOpts{
				Name: "imagine_analyzer_categories_added_total",
				Help: "Custom categories added by participants",
			}),
			BoardOperations: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "imagine_board_operations_total",
				Help: "Data-set board operations, by operation and outcome",
			}, []string{"operation", "success"}),
			QuestionnaireCompletions: promauto.NewCounter(prometheus.CounterOpts{
				Name: "imagine_questionnaire_completions_total",
				Help: "Questionnaires answered through to the summary",
			}),
			EventsPublished: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "imagine_events_published_total",
				Help: "Analytics events published to NATS, by type and outcome",
			}, []string{"type", "success"}),
			FeedPushes: promauto.NewCounter(prometheus.CounterOpts{
				Name: "imagine_feed_pushes_total",
				Help: "Feed snapshots pushed to the websocket hub",
			}),
			HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "imagine_http_requests_total",
				Help: "HTTP requests, by method, route and status",
			}, []string{"method", "path", "status"}),
			HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "imagine_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			}, []string{"method", "path"}),
		}
	})
	return sharedMetrics
}

func boolLabel(ok bool) string {
	if ok {
		return "true"
	}
	return "false"
}

func (m *Metrics) RecordInsights(prefixes ...string) {
	for _, p := range prefixes {
		m.InsightsTotal.WithLabelValues(p).Inc()
	}
}

func (m *Metrics) RecordBoardOperation(operation string, success bool) {
	m.BoardOperations.WithLabelValues(operation, boolLabel(success)).Inc()
}

func (m *Metrics) RecordEventPublished(eventType string, success bool) {
	m.EventsPublished.WithLabelValues(eventType, boolLabel(success)).Inc()
}

func (m *Metrics) RecordHTTPRequest(method, path, status string, duration float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}
