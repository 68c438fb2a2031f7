package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	verificationsTotal   *prometheus.CounterVec
	verificationScore    *prometheus.HistogramVec
	verificationDuration *prometheus.HistogramVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adv",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "adv",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "adv",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	verificationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adv",
			Subsystem: "verification",
			Name:      "total",
			Help:      "Total completed verifications by expected type and verdict.",
		},
		[]string{"service", "expected_type", "verdict"},
	)
	verificationScore := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "adv",
			Subsystem: "verification",
			Name:      "overall_score",
			Help:      "Distribution of overall verification scores.",
			Buckets:   []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"service", "expected_type"},
	)
	verificationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "adv",
			Subsystem: "verification",
			Name:      "duration_seconds",
			Help:      "Verification pipeline duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "expected_type"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		verificationsTotal,
		verificationScore,
		verificationDuration,
	)

	return &HTTPServerMetrics{
		registry:             registry,
		requestTotal:         requestTotal,
		requestDuration:      requestDuration,
		requestInFlight:      requestInFlight,
		verificationsTotal:   verificationsTotal,
		verificationScore:    verificationScore,
		verificationDuration: verificationDuration,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/documents/"):
		return "/v1/documents/{document_id}"
	default:
		return path
	}
}

// RecordVerification observes one completed pipeline run regardless of
// verdict; an invalid document still counts as a completed verification.
func (m *HTTPServerMetrics) RecordVerification(service, expectedType string, isValid bool, overallScore int, duration time.Duration) {
	verdict := "invalid"
	if isValid {
		verdict = "valid"
	}
	if expectedType == "" {
		expectedType = "unknown"
	}
	m.verificationsTotal.WithLabelValues(service, expectedType, verdict).Inc()
	m.verificationScore.WithLabelValues(service, expectedType).Observe(float64(overallScore))
	m.verificationDuration.WithLabelValues(service, expectedType).Observe(duration.Seconds())
}
