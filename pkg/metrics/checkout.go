package metrics

import "github.com/prometheus/client_golang/prometheus"

// CheckoutMetrics counts gate decisions and submitted orders.
type CheckoutMetrics struct {
	blocked   *prometheus.CounterVec
	allowed   prometheus.Counter
	submitted prometheus.Counter
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	blocked := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_blocked_total",
		Help: "Checkout gate refusals by reason.",
	}, []string{"reason"})
	allowed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_allowed_total",
		Help: "Checkout gate approvals.",
	})
	submitted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_submitted_total",
		Help: "Orders accepted for submission.",
	})
	reg.MustRegister(blocked, allowed, submitted)
	return &CheckoutMetrics{
		blocked:   blocked,
		allowed:   allowed,
		submitted: submitted,
	}
}

// IncBlocked increments the refusal counter for the given reason.
func (c *CheckoutMetrics) IncBlocked(reason string) {
	if c == nil || c.blocked == nil {
		return
	}
	if reason == "" {
		reason = "unknown"
	}
	c.blocked.WithLabelValues(reason).Inc()
}

// IncAllowed increments the approval counter.
func (c *CheckoutMetrics) IncAllowed() {
	if c == nil || c.allowed == nil {
		return
	}
	c.allowed.Inc()
}

// IncSubmitted increments the submitted order counter.
func (c *CheckoutMetrics) IncSubmitted() {
	if c == nil || c.submitted == nil {
		return
	}
	c.submitted.Inc()
}
