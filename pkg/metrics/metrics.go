package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements the domain Metrics interface using Prometheus.
type Recorder struct {
	stageRows     *prometheus.GaugeVec
	stageDuration *prometheus.HistogramVec
	gatewayRows   *prometheus.GaugeVec
	requestsTotal *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	holdoutMAE    *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		stageRows: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "oilpulse_pipeline_stage_rows",
				Help: "Row count produced by each pipeline stage in the last run",
			},
			[]string{"stage"},
		),
		stageDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "oilpulse_pipeline_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
			},
			[]string{"stage"},
		),
		gatewayRows: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "oilpulse_gateway_rows",
				Help: "Row count after each gateway cleaning step on the last request",
			},
			[]string{"table", "step"},
		),
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oilpulse_gateway_requests_total",
				Help: "Total number of gateway table queries",
			},
			[]string{"table"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oilpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		holdoutMAE: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "oilpulse_holdout_mae",
				Help: "Holdout mean absolute error per forecasting stage, in price units",
			},
			[]string{"stage"},
		),
	}
}

// RecordStageRows records the row count a pipeline stage produced.
func (r *Recorder) RecordStageRows(stage string, rows int) {
	r.stageRows.WithLabelValues(stage).Set(float64(rows))
}

// RecordStageDuration records a pipeline stage duration in seconds.
func (r *Recorder) RecordStageDuration(stage string, seconds float64) {
	r.stageDuration.WithLabelValues(stage).Observe(seconds)
}

// RecordGatewayRows records the row count after a gateway cleaning step.
func (r *Recorder) RecordGatewayRows(table, step string, rows int) {
	r.gatewayRows.WithLabelValues(table, step).Set(float64(rows))
}

// RecordRequest records a gateway table query.
func (r *Recorder) RecordRequest(table string) {
	r.requestsTotal.WithLabelValues(table).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordHoldoutMAE records a stage's holdout mean absolute error.
func (r *Recorder) RecordHoldoutMAE(stage string, mae float64) {
	r.holdoutMAE.WithLabelValues(stage).Set(mae)
}
