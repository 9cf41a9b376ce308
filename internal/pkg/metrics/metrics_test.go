//go:build unit

package metrics_test

import (
	"testing"

	"code-lookup/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackLimiter(t *testing.T) {
	before := testutil.ToFloat64(metrics.RateLimiterKeys)

	untrackFirst := metrics.TrackLimiter(func() int { return 3 })
	untrackSecond := metrics.TrackLimiter(func() int { return 4 })
	defer untrackSecond()

	assert.Equal(t, before+7, testutil.ToFloat64(metrics.RateLimiterKeys), "each limiter reports its own keys")

	untrackFirst()
	assert.Equal(t, before+4, testutil.ToFloat64(metrics.RateLimiterKeys))

	count, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "code_lookup_rate_limiter_keys")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordCheck(t *testing.T) {
	before := testutil.ToFloat64(metrics.ChecksTotal.WithLabelValues(metrics.OutcomeFound))
	metrics.RecordCheck(metrics.OutcomeFound)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ChecksTotal.WithLabelValues(metrics.OutcomeFound)))
}
