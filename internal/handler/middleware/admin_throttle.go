package middleware

import (
	"net/http"
	"sync"

	"code-lookup/internal/handler/httperr"
	"code-lookup/internal/pkg/config"
	"code-lookup/internal/pkg/errs"
	"code-lookup/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idle buckets are dropped once the table grows past this size
const maxThrottleEntries = 4096

var errAdminThrottled = errs.Mark(errs.New("admin request throttled"), errs.ErrRateLimited)

// AdminThrottle limits authenticated admin API calls per connecting peer with a
// token bucket. It is mounted after RequireAdmin, so a missing or wrong
// credential is always answered with 401 and never drains a bucket.
type AdminThrottle struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	tr       *i18n.Translator
}

func NewAdminThrottle(cfg config.AdminConfig, tr *i18n.Translator) *AdminThrottle {
	return &AdminThrottle{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(cfg.ThrottleRPS),
		burst:    cfg.ThrottleBurst,
		tr:       tr,
	}
}

func (t *AdminThrottle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.limiterFor(PeerKey(c)).Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errAdminThrottled, t.tr.T(i18n.KeyTooManyRequests), nil)
			return
		}
		c.Next()
	}
}

func (t *AdminThrottle) limiterFor(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	if l, ok := t.limiters[key]; ok {
		return l
	}
	if len(t.limiters) >= maxThrottleEntries {
		t.evictIdleLocked()
	}
	l := rate.NewLimiter(t.limit, t.burst)
	t.limiters[key] = l
	return l
}

// evictIdleLocked drops buckets that have refilled completely.
func (t *AdminThrottle) evictIdleLocked() {
	for k, l := range t.limiters {
		if l.Tokens() >= float64(t.burst) {
			delete(t.limiters, k)
		}
	}
}

func (t *AdminThrottle) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.limiters)
}
