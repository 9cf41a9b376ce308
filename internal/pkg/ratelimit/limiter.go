// Package ratelimit implements an in-memory sliding-window attempt counter
// keyed by client.
package ratelimit

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"code-lookup/internal/pkg/clock"
)

const (
	defaultShards     = 32
	defaultSweepEvery = 1024
)

// Options configures a Limiter.
type Options struct {
	// Attempts is the number of calls permitted inside one window.
	Attempts int
	Window   time.Duration
	// Shards splits the key space so unrelated clients do not contend on one mutex.
	Shards int
	// SweepEvery is the number of calls between sweeps of fully expired keys.
	// Each sweep visits the next shard in turn, so every shard is swept once per
	// SweepEvery*Shards calls no matter which keys the traffic hits. Zero
	// disables sweeping.
	SweepEvery int
}

// Limiter counts attempts per key over a trailing window. It is safe for
// concurrent use.
type Limiter struct {
	attempts   int
	window     time.Duration
	sweepEvery uint64
	clock      clock.Clock
	shards     []*shard
	calls      atomic.Uint64
}

type shard struct {
	mu      sync.Mutex
	windows map[string][]time.Time
}

// New returns a Limiter reading time from clk. Non-positive Shards and
// negative SweepEvery fall back to defaults.
func New(opts Options, clk clock.Clock) *Limiter {
	if opts.Shards <= 0 {
		opts.Shards = defaultShards
	}
	if opts.SweepEvery < 0 {
		opts.SweepEvery = defaultSweepEvery
	}
	shards := make([]*shard, opts.Shards)
	for i := range shards {
		shards[i] = &shard{windows: make(map[string][]time.Time)}
	}
	return &Limiter{
		attempts:   opts.Attempts,
		window:     opts.Window,
		sweepEvery: uint64(opts.SweepEvery),
		clock:      clk,
		shards:     shards,
	}
}

// Allow records an attempt for key when the key still has room in its window.
// When it does not, Allow reports the whole seconds until the oldest attempt
// leaves the window.
func (l *Limiter) Allow(key string) (bool, int) {
	now := l.clock.Now()
	if n := l.calls.Add(1); l.sweepEvery > 0 && n%l.sweepEvery == 0 {
		// no other shard lock is held here
		idx := (n / l.sweepEvery) % uint64(len(l.shards))
		l.shards[idx].sweep(now, l.window)
	}

	s := l.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	attempts := prune(s.windows[key], now, l.window)
	if len(attempts) >= l.attempts {
		s.windows[key] = attempts
		retryAfter := l.window - now.Sub(attempts[0])
		return false, int(retryAfter / time.Second)
	}

	s.windows[key] = append(attempts, now)
	return true, 0
}

// Len reports how many client keys are currently tracked.
func (l *Limiter) Len() int {
	n := 0
	for _, s := range l.shards {
		s.mu.Lock()
		n += len(s.windows)
		s.mu.Unlock()
	}
	return n
}

func (l *Limiter) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return l.shards[h.Sum32()%uint32(len(l.shards))]
}

// prune drops attempts that are a full window old or older. Attempts are
// appended in clock order so expired entries form a prefix.
func prune(attempts []time.Time, now time.Time, window time.Duration) []time.Time {
	i := 0
	for i < len(attempts) && now.Sub(attempts[i]) >= window {
		i++
	}
	if i == 0 {
		return attempts
	}
	return append(attempts[:0], attempts[i:]...)
}

func (s *shard) sweep(now time.Time, window time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, attempts := range s.windows {
		if len(attempts) == 0 || now.Sub(attempts[len(attempts)-1]) >= window {
			delete(s.windows, key)
		}
	}
}
