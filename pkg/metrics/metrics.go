package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	OrderSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cod_order_submissions_total",
			Help: "Order submissions by outward result code (success or error code)",
		},
		[]string{"result"},
	)
	ShopifyResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cod_shopify_responses_total",
			Help: "Shopify orderCreate outcomes by classification layer",
		},
		[]string{"layer"}, // ok|transport_error|non_json|http_error|graphql_error|missing_payload|user_errors|no_order
	)
)

var (
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cod_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)
	RateLimitEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cod_rate_limit_entries",
			Help: "Number of identifiers currently tracked by the rate limiter",
		},
	)
)

var (
	OrderEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cod_order_events_total",
			Help: "Order-created events by publish status",
		},
		[]string{"status"}, // published|failed
	)
)

var registerOnce sync.Once

// MustRegister — регистрация коллекторов; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(OrderSubmissions, ShopifyResponses, RateLimited, RateLimitEntries, OrderEvents)
	})
}
