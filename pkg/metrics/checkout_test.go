package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCheckoutMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCheckoutMetrics(reg)

	m.IncBlocked("store_closed")
	m.IncBlocked("store_closed")
	m.IncBlocked("")
	m.IncAllowed()
	m.IncSubmitted()

	if got := testutil.ToFloat64(m.blocked.WithLabelValues("store_closed")); got != 2 {
		t.Fatalf("expected 2 store_closed refusals, got %v", got)
	}
	if got := testutil.ToFloat64(m.blocked.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty reason to map to unknown, got %v", got)
	}
	if got := testutil.ToFloat64(m.allowed); got != 1 {
		t.Fatalf("expected 1 approval, got %v", got)
	}
	if got := testutil.ToFloat64(m.submitted); got != 1 {
		t.Fatalf("expected 1 submitted order, got %v", got)
	}
}

func TestCheckoutMetricsNilReceiverIsSafe(t *testing.T) {
	var m *CheckoutMetrics
	m.IncBlocked("store_closed")
	m.IncAllowed()
	m.IncSubmitted()
}

func TestHTTPMetricsObserve(t *testing.T) {
	m := NewHTTPMetrics()
	m.Observe("GET", 200, 25*time.Millisecond)
	m.Observe("GET", 200, 30*time.Millisecond)
	m.Observe("POST", 422, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "200")); got != 2 {
		t.Fatalf("expected 2 GET 200s, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "422")); got != 1 {
		t.Fatalf("expected 1 POST 422, got %v", got)
	}
}
