package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	SuggestionAccepted    = "accepted"
	SuggestionUnavailable = "unavailable"
	SuggestionUnusable    = "unusable"
)

var (
	// Decisions persisted, by final strategy
	PricingDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_decisions_total",
		Help: "Total number of pricing decisions persisted",
	}, []string{"strategy"})

	// Outcome of each call to the suggestion service
	SuggestionOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_suggestion_outcomes_total",
		Help: "Suggestion service outcomes (accepted, unavailable, unusable)",
	}, []string{"outcome"})

	FloorAdjustments = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pricing_floor_adjustments_total",
		Help: "Total number of proposals lifted to the product floor price",
	})

	SuggestionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_suggestion_latency_seconds",
		Help:    "Latency of suggestion service calls",
		Buckets: prometheus.DefBuckets,
	})

	MarketCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_market_cache_lookups_total",
		Help: "Market summary cache lookups (hit, miss, error)",
	}, []string{"result"})
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			PricingDecisions,
			SuggestionOutcomes,
			FloorAdjustments,
			SuggestionLatency,
			MarketCacheLookups,
		)
	})
}
