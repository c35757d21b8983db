package monitoring

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)
)

var (
	// AIFallbackReplies counts canned replies served instead of generated ones.
	AIFallbackReplies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_fallback_replies_total",
			Help: "Canned replies returned because text generation failed or was empty",
		},
		[]string{"operation", "reason"},
	)

	AIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "Latency of text generation calls",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"operation"},
	)

	LawyerSearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lawyer_search_results",
			Help:    "Number of lawyers returned per directory search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)
)

var registerOnce sync.Once

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(AIFallbackReplies)
		prometheus.MustRegister(AIRequestDuration)
		prometheus.MustRegister(LawyerSearchResults)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
