package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|expired|set|swept
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var (
	DBQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_db_queries_total",
			Help: "Number of catalog queries sent to Postgres",
		},
		[]string{"query", "status"}, // status: ok|error
	)
	DBQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_db_query_duration_seconds",
			Help:    "Duration of catalog queries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)
	Fallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fallbacks_total",
			Help: "Number of static fallback payloads served instead of database data",
		},
		[]string{"endpoint"},
	)
)

var HTTPRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of handled HTTP requests",
	},
	[]string{"method", "route", "status"},
)

// MustRegister — регистрирует коллекторы в глобальном реестре.
// Повторный вызов не паникует: AlreadyRegistered пропускаем.
func MustRegister() {
	for _, c := range []prometheus.Collector{
		CacheOps, CacheSize, DBQueries, DBQueryDuration, Fallbacks, HTTPRequests,
	} {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}
