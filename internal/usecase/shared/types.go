package shared

// RateLimiter gates attempts per client key. retryAfter is in whole seconds
// and only meaningful when permitted is false.
type RateLimiter interface {
	Allow(clientKey string) (permitted bool, retryAfter int)
}
