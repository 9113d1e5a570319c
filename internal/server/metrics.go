package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/blacktop/socialshare/internal/share"
)

type metrics struct {
	registry        *prometheus.Registry
	linksBuilt      *prometheus.CounterVec
	buildErrors     *prometheus.CounterVec
	cacheHits       prometheus.Counter
	rateLimited     prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		linksBuilt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "socialshare_links_built_total",
				Help: "Share links built, by network",
			},
			[]string{"network"},
		),
		buildErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "socialshare_build_errors_total",
				Help: "Share link build failures, by network and error kind",
			},
			[]string{"network", "kind"},
		),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "socialshare_link_cache_hits_total",
			Help: "Share links served from the cache",
		}),
		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "socialshare_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		}),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "socialshare_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by route",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"route"},
		),
	}
}

// unsupportedLabel replaces network names that have no template so label
// cardinality stays bounded.
const unsupportedLabel = "unsupported"

func (m *metrics) recordError(network string, err error) {
	m.buildErrors.WithLabelValues(network, share.ErrorKind(err)).Inc()
}
