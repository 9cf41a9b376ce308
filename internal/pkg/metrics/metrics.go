package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "code_lookup_requests_total",
		Help: "Total HTTP requests by method, path, and response status.",
	}, []string{"method", "path", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "code_lookup_request_duration_seconds",
		Help:    "Request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	AdminAuthFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "code_lookup_admin_auth_failures_total",
		Help: "Admin API requests rejected for a missing or wrong credential.",
	})

	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "code_lookup_checks_total",
		Help: "Code checks by outcome.",
	}, []string{"outcome"})
)

const (
	OutcomeFound       = "found"
	OutcomeNotFound    = "not_found"
	OutcomeRateLimited = "rate_limited"
	OutcomeInvalid     = "invalid"
)

func RecordCheck(outcome string) {
	ChecksTotal.WithLabelValues(outcome).Inc()
}

var limiters = struct {
	mu   sync.Mutex
	next int
	keys map[int]func() int
}{keys: make(map[int]func() int)}

// RateLimiterKeys sums the keys of every limiter registered with TrackLimiter,
// so several apps in one process each contribute their own count.
var RateLimiterKeys = promauto.NewGaugeFunc(prometheus.GaugeOpts{
	Name: "code_lookup_rate_limiter_keys",
	Help: "Client keys currently tracked by the rate limiter.",
}, trackedKeys)

// TrackLimiter adds keys to RateLimiterKeys until the returned func is called.
func TrackLimiter(keys func() int) (untrack func()) {
	limiters.mu.Lock()
	defer limiters.mu.Unlock()

	id := limiters.next
	limiters.next++
	limiters.keys[id] = keys

	return func() {
		limiters.mu.Lock()
		defer limiters.mu.Unlock()
		delete(limiters.keys, id)
	}
}

func trackedKeys() float64 {
	limiters.mu.Lock()
	defer limiters.mu.Unlock()

	total := 0
	for _, keys := range limiters.keys {
		total += keys()
	}
	return float64(total)
}
