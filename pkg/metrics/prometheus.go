package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the service.
type Metrics struct {
	RemoteFetches   *prometheus.CounterVec
	FetchErrors     *prometheus.CounterVec
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
	ListDuration    prometheus.Histogram
	ComposeDuration prometheus.Histogram
}

// New creates and registers the service metrics under the given namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		RemoteFetches: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_fetches_total",
			Help:      "The total number of remote API fetches",
		}, []string{"resource"}),
		FetchErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_errors_total",
			Help:      "The total number of failed remote API fetches",
		}, []string{"resource"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launch_cache_hits_total",
			Help:      "The total number of launch collection cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launch_cache_misses_total",
			Help:      "The total number of launch collection cache misses",
		}),
		ListDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "list_pipeline_duration_seconds",
			Help:      "Time taken to filter, sort and paginate the launch list",
			Buckets:   prometheus.DefBuckets,
		}),
		ComposeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "detail_compose_duration_seconds",
			Help:      "Time taken to compose a launch detail view",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
