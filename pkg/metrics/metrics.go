package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	AssessmentsTotal *prometheus.CounterVec
	ChatStreamsTotal *prometheus.CounterVec
	StreamChunks     prometheus.Counter
	DietPlansTotal   *prometheus.CounterVec
	TrendAnalyses    *prometheus.CounterVec

	GatewayRequestDuration *prometheus.HistogramVec

	PersistDropped prometheus.Counter
	DBConnections  prometheus.Gauge
}

func NewCollector(serviceName string) *Collector {
	return &Collector{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "path", "status"}),

		InFlightGauge: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		AssessmentsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "coach",
			Name:      "assessments_total",
			Help:      "Total completed risk assessments by resulting stage.",
		}, []string{"stage"}),

		ChatStreamsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "coach",
			Name:      "chat_streams_total",
			Help:      "Total chat turns by outcome.",
		}, []string{"outcome"}),

		StreamChunks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "coach",
			Name:      "stream_chunks_total",
			Help:      "Total content fragments applied to assistant messages.",
		}),

		DietPlansTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "coach",
			Name:      "diet_plans_total",
			Help:      "Total diet plans generated, by source.",
		}, []string{"source"}),

		TrendAnalyses: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "coach",
			Name:      "trend_analyses_total",
			Help:      "Total trend analyses produced, by summary source.",
		}, []string{"source"}),

		GatewayRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Completion gateway request latency distribution.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0},
		}, []string{"operation"}),

		PersistDropped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "store",
			Name:      "writes_dropped_total",
			Help:      "Best-effort persistence writes that failed and were skipped. Alert if growing.",
		}),

		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "db",
			Name:      "open_connections",
			Help:      "Current number of open database connections.",
		}),
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
