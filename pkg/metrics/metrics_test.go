package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/shopify_cod/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestSubmissionCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeOK := testutil.ToFloat64(metrics.OrderSubmissions.WithLabelValues("success"))
	beforeLayer := testutil.ToFloat64(metrics.ShopifyResponses.WithLabelValues("user_errors"))

	metrics.OrderSubmissions.WithLabelValues("success").Inc()
	metrics.ShopifyResponses.WithLabelValues("user_errors").Inc()

	if got := testutil.ToFloat64(metrics.OrderSubmissions.WithLabelValues("success")); got != beforeOK+1 {
		t.Fatalf("OrderSubmissions(success): got=%v want=%v", got, beforeOK+1)
	}
	if got := testutil.ToFloat64(metrics.ShopifyResponses.WithLabelValues("user_errors")); got != beforeLayer+1 {
		t.Fatalf("ShopifyResponses(user_errors): got=%v want=%v", got, beforeLayer+1)
	}
}

func TestRateLimitEntries_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.RateLimitEntries)

	metrics.RateLimitEntries.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.RateLimitEntries); got != cur+5 {
		t.Fatalf("RateLimitEntries after +5: got=%v want=%v", got, cur+5)
	}

	metrics.RateLimitEntries.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.RateLimitEntries); got != cur {
		t.Fatalf("RateLimitEntries restore: got=%v want=%v", got, cur)
	}
}
