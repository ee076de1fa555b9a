package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catalogQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_catalog_queries_total",
		Help: "The total number of catalog queries by sort key",
	}, []string{"sort"})
	emptyResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_catalog_empty_results_total",
		Help: "The total number of catalog queries that matched nothing",
	})
	resultSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_catalog_query_results",
		Help:    "Number of products returned per catalog query",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_result_cache_lookups_total",
		Help: "Result cache lookups by outcome (hit, miss, error)",
	}, []string{"outcome"})
	orderQuotes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_order_quotes_total",
		Help: "The total number of priced order quotes",
	})
)

// ObserveQuery records one catalog query and its result size. sortKey must
// already be normalized to keep label cardinality bounded.
func ObserveQuery(sortKey string, results int) {
	catalogQueries.WithLabelValues(sortKey).Inc()
	resultSize.Observe(float64(results))
	if results == 0 {
		emptyResults.Inc()
	}
}

// Cache lookup outcomes
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// ObserveCacheLookup records the outcome of a result cache lookup
func ObserveCacheLookup(outcome string) {
	cacheLookups.WithLabelValues(outcome).Inc()
}

// ObserveOrderQuote records a successfully priced order quote
func ObserveOrderQuote() {
	orderQuotes.Inc()
}
