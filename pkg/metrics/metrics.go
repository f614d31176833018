package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Meta Graph API
	externalAPICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_api_calls_total",
			Help: "Total number of calls to the Meta Graph API",
		},
		[]string{"api", "status"},
	)

	externalAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_api_duration_seconds",
			Help:    "Meta Graph API call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"api"},
	)

	externalAPIFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_api_failures_total",
			Help: "Total number of Meta Graph API calls that never got a response",
		},
		[]string{"api", "error_type"},
	)

	// Domínio
	adSetResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adset_source_resolutions_total",
			Help: "Ad set source resolutions by provenance",
		},
		[]string{"provenance"},
	)

	adSetToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adset_toggles_total",
			Help: "Per-item ad set status changes by target status and result",
		},
		[]string{"target_status", "result"},
	)

	budgetWarnings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "adset_budget_warnings",
			Help: "Active ad sets above the budget warning threshold on the last check",
		},
	)
)

func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordExternalAPICall(api, status string, duration time.Duration) {
	externalAPICalls.WithLabelValues(api, status).Inc()
	externalAPIDuration.WithLabelValues(api).Observe(duration.Seconds())
}

func RecordExternalAPIFailure(api, errorType string) {
	externalAPIFailures.WithLabelValues(api, errorType).Inc()
}

func RecordResolution(provenance string) {
	adSetResolutions.WithLabelValues(provenance).Inc()
}

func RecordToggle(targetStatus string, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	adSetToggles.WithLabelValues(targetStatus, result).Inc()
}

func SetBudgetWarnings(count int) {
	budgetWarnings.Set(float64(count))
}

// Handler expõe o registro padrão no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
