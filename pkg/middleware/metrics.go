package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/adset-control-api/pkg/metrics"
)

// MetricsMiddleware registra contagem e duração das requisições no Prometheus.
// Rotas inexistentes são agrupadas para não explodir a cardinalidade.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(sr, r)

			endpoint := r.URL.Path
			if sr.statusCode == http.StatusNotFound || sr.statusCode == http.StatusMethodNotAllowed {
				endpoint = "unmatched"
			}

			metrics.RecordHTTPRequest(r.Method, endpoint, sr.statusCode, time.Since(start))
		})
	}
}
