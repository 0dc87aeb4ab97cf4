package httpclient

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// httpRequests tracks wire attempts by method and response status.
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gwosc_http_requests_total",
			Help: "Total HTTP requests to the archive host by method and status code",
		},
		[]string{"method", "code"},
	)

	// httpRequestDuration tracks wire attempt latency.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gwosc_http_request_duration_seconds",
			Help:    "HTTP request latency to the archive host",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// httpRequestErrors tracks transport-level failures (no response).
	httpRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gwosc_http_request_errors_total",
			Help: "Total HTTP transport errors by method",
		},
		[]string{"method"},
	)
)

// metricsTransport records Prometheus metrics for every wire attempt.
// It sits below the retry transport so each retry is counted.
type metricsTransport struct {
	base http.RoundTripper
}

// newMetricsTransport creates a metrics transport around base.
func newMetricsTransport(base http.RoundTripper) *metricsTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &metricsTransport{base: base}
}

// RoundTrip implements http.RoundTripper.
func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	httpRequestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	if err != nil {
		httpRequestErrors.WithLabelValues(req.Method).Inc()
		return nil, err
	}

	httpRequests.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}
