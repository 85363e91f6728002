// Package ratelimit throttles clients per endpoint with token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// bucket holds up to capacity tokens and refills at rate tokens per second.
type bucket struct {
	capacity float64
	rate     float64
	tokens   float64
	last     time.Time
}

func newBucket(capacity int, rate float64, now time.Time) *bucket {
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		last:     now,
	}
}

func (b *bucket) refill(now time.Time) {
	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens = min(b.capacity, b.tokens+elapsed*b.rate)
	}
	b.last = now
}

// take consumes one token if available.
func (b *bucket) take(now time.Time) bool {
	b.refill(now)
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// untilNextToken is how long until take would succeed.
func (b *bucket) untilNextToken() time.Duration {
	if b.tokens >= 1 {
		return 0
	}
	return time.Duration((1 - b.tokens) / b.rate * float64(time.Second))
}

// Info describes a client's standing after a request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter tracks one bucket per client and endpoint rule.
type Limiter struct {
	config *Config
	now    func() time.Time

	mu       sync.Mutex
	buckets  map[string]*bucket
	stopOnce sync.Once
	stop     chan struct{}
}

// NewLimiter creates a limiter. A nil config uses Defaults().
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = Defaults()
	}
	l := &Limiter{
		config:  config,
		now:     time.Now,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	if config.Enabled && config.IdleTTL > 0 {
		go l.sweepLoop(config.IdleTTL)
	}
	return l
}

// Allow records a request from clientID to method and path and reports
// whether it may proceed.
func (l *Limiter) Allow(clientID, method, path string) Info {
	if !l.config.Enabled || l.config.Exempt[clientID] {
		return Info{Allowed: true}
	}

	rule := l.config.Match(method, path)
	if rule == nil || rule.Limit <= 0 {
		return Info{Allowed: true}
	}

	key := clientID + " " + rule.Method + " " + rule.Path
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(rule.burst(), float64(rule.Limit)/rule.Window.Seconds(), now)
		l.buckets[key] = b
	}

	info := Info{Allowed: b.take(now), Limit: rule.Limit}
	info.Remaining = int(b.tokens)
	if !info.Allowed {
		info.RetryAfter = b.untilNextToken()
	}
	return info
}

// Sweep drops buckets idle for at least ttl and returns how many were dropped.
// An idle bucket has refilled, so dropping it loses no state.
func (l *Limiter) Sweep(ttl time.Duration) int {
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()

	dropped := 0
	for key, b := range l.buckets {
		if b.last.Before(cutoff) {
			delete(l.buckets, key)
			dropped++
		}
	}
	return dropped
}

func (l *Limiter) sweepLoop(ttl time.Duration) {
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Sweep(ttl)
		case <-l.stop:
			return
		}
	}
}

// Stop ends the background sweep.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
