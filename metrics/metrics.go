package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// PredictionsTotal counts served predictions by outcome and source.
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "farmwise",
		Subsystem: "predictor",
		Name:      "predictions_total",
		Help:      "Total number of prediction requests handled, labeled by result and prediction source.",
	}, []string{"result", "source"})

	// PredictionDurationSeconds is end-to-end handling time per request.
	PredictionDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "farmwise",
		Subsystem: "predictor",
		Name:      "prediction_duration_seconds",
		Help:      "End-to-end time to serve a prediction request, including the classifier call.",
		// Remote inference calls dominate; keep buckets coarse.
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"source"})

	// FallbackMode is 1 when the service runs on the demo fallback classifier.
	FallbackMode = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "farmwise",
		Subsystem: "predictor",
		Name:      "fallback_mode",
		Help:      "Whether the service is running without a configured model endpoint (1 = fallback).",
	})

	// HistoryWriteErrorTotal counts failed prediction-history inserts.
	HistoryWriteErrorTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "farmwise",
		Subsystem: "predictor",
		Name:      "history_write_error_total",
		Help:      "Total number of prediction history insert errors (best-effort writes).",
	})

	// PublishErrorTotal counts failed prediction-event publishes.
	PublishErrorTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "farmwise",
		Subsystem: "predictor",
		Name:      "event_publish_error_total",
		Help:      "Total number of prediction event publish errors (best-effort publishes).",
	})
)

// Register registers predictor metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			PredictionsTotal,
			PredictionDurationSeconds,
			FallbackMode,
			HistoryWriteErrorTotal,
			PublishErrorTotal,
		)
	})
}
