//go:build unit

package middleware

import (
	"fmt"
	"testing"

	"code-lookup/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestAdminThrottle_EvictsIdleBuckets(t *testing.T) {
	th := NewAdminThrottle(config.AdminConfig{ThrottleRPS: 1, ThrottleBurst: 5}, nil)

	for i := 0; i < maxThrottleEntries; i++ {
		th.limiterFor(fmt.Sprintf("client-%d", i))
	}
	assert.Equal(t, maxThrottleEntries, th.size())

	// every bucket is still full, so all of them are idle
	th.limiterFor("newcomer")
	assert.Equal(t, 1, th.size())
}

func TestAdminThrottle_KeepsActiveBuckets(t *testing.T) {
	th := NewAdminThrottle(config.AdminConfig{ThrottleRPS: 0.001, ThrottleBurst: 5}, nil)

	th.limiterFor("busy").Allow()
	for i := 1; i < maxThrottleEntries; i++ {
		th.limiterFor(fmt.Sprintf("client-%d", i))
	}

	th.limiterFor("newcomer")
	assert.Equal(t, 2, th.size())
}
