package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Trade metrics
	TradesExecuted *prometheus.CounterVec
	TradesRejected *prometheus.CounterVec
	TradeDuration  prometheus.Histogram

	// Quote metrics
	QuoteLookups  *prometheus.CounterVec
	QuoteDuration prometheus.Histogram
	QuoteCacheHit *prometheus.CounterVec

	// Account metrics
	AccountsCreated prometheus.Counter

	// Valuation metrics
	ValuationsComputed prometheus.Counter
	ValuationDuration  prometheus.Histogram
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TradesExecuted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobroker_trades_executed_total",
				Help: "Total number of committed trades",
			},
			[]string{"side"},
		),
		TradesRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobroker_trades_rejected_total",
				Help: "Total number of rejected trades",
			},
			[]string{"side"},
		),
		TradeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobroker_trade_duration_seconds",
			Help:    "Duration of trade execution",
			Buckets: prometheus.DefBuckets,
		}),
		QuoteLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobroker_quote_lookups_total",
				Help: "Total number of quote gateway lookups",
			},
			[]string{"result"},
		),
		QuoteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobroker_quote_duration_seconds",
			Help:    "Duration of quote gateway lookups",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		QuoteCacheHit: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobroker_quote_cache_total",
				Help: "Quote cache hits and misses",
			},
			[]string{"outcome"},
		),
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobroker_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		ValuationsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobroker_valuations_computed_total",
			Help: "Total number of portfolio valuations computed",
		}),
		ValuationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobroker_valuation_duration_seconds",
			Help:    "Duration of portfolio valuation",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
