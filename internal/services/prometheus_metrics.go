package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionMutations *prometheus.CounterVec
	summaryRequests      *prometheus.CounterVec
	quotaRejections      prometheus.Counter
	suggestionRequests   *prometheus.CounterVec
	aiRequestDuration    prometheus.Histogram
	streamClients        prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_mutations_total",
				Help: "Total number of transaction create, update and delete operations",
			},
			[]string{"operation"},
		),
		summaryRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_summary_requests_total",
				Help: "Total number of AI summary requests by outcome",
			},
			[]string{"outcome"},
		),
		quotaRejections: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ai_quota_rejections_total",
				Help: "Total number of AI summary requests rejected by the monthly quota",
			},
		),
		suggestionRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_suggestion_requests_total",
				Help: "Total number of category suggestion requests by outcome",
			},
			[]string{"outcome"},
		),
		aiRequestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ai_request_duration_milliseconds",
				Help:    "Upstream AI request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 16),
			},
		),
		streamClients: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "stream_clients_connected",
				Help: "Current number of connected transaction stream clients",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordTransactionMutation(operation string) {
	m.transactionMutations.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordSummaryRequest(outcome string) {
	m.summaryRequests.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetrics) RecordQuotaRejection() {
	m.quotaRejections.Inc()
}

func (m *PrometheusMetrics) RecordSuggestionRequest(outcome string) {
	m.suggestionRequests.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetrics) RecordAIRequestDuration(duration time.Duration) {
	m.aiRequestDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) SetStreamClients(count int) {
	m.streamClients.Set(float64(count))
}
