package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salonbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salonbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AvailabilityQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salonbook_availability_queries_total",
			Help: "Total number of availability queries",
		},
		[]string{"with_slots"},
	)

	CouponValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salonbook_coupon_validations_total",
			Help: "Coupon validations by outcome code",
		},
		[]string{"outcome"},
	)

	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salonbook_checkouts_total",
			Help: "Checkout attempts by gateway and outcome",
		},
		[]string{"gateway", "outcome"},
	)

	CheckoutGrossAmount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "salonbook_checkout_gross_amount_total",
			Help: "Sum of gross amounts sent to the payment gateway",
		},
	)

	CategoryCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salonbook_category_cache_lookups_total",
			Help: "Service category cache lookups by result",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAvailabilityQuery(withSlots bool) {
	label := "false"
	if withSlots {
		label = "true"
	}
	AvailabilityQueriesTotal.WithLabelValues(label).Inc()
}

// RecordCouponValidation counts a coupon check; outcome is "accepted" or the rejection code.
func RecordCouponValidation(outcome string) {
	CouponValidationsTotal.WithLabelValues(outcome).Inc()
}

func RecordCheckout(gateway, outcome string, grossAmount int64) {
	CheckoutsTotal.WithLabelValues(gateway, outcome).Inc()
	if outcome == "success" && grossAmount > 0 {
		CheckoutGrossAmount.Add(float64(grossAmount))
	}
}

func RecordCategoryCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CategoryCacheLookupsTotal.WithLabelValues(result).Inc()
}
