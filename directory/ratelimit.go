package directory

import (
	"context"
	"sync"
	"time"
)

// RateLimiter bounds outbound directory calls with a sliding window plus a
// minimum spacing between consecutive calls. Callers queue on the mutex, so
// the bound holds across every goroutine sharing the limiter.
type RateLimiter struct {
	mu       sync.Mutex
	calls    []time.Time // trailing window, oldest first
	lastCall time.Time
	window   time.Duration
	maxCalls int
	minDelay time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// LimiterOption configures a RateLimiter.
type LimiterOption func(*RateLimiter)

// WithLimiterClock sets a custom clock function (for testing).
func WithLimiterClock(now func() time.Time) LimiterOption {
	return func(l *RateLimiter) { l.now = now }
}

// WithLimiterSleep replaces the context-aware sleep (for testing).
func WithLimiterSleep(sleep func(ctx context.Context, d time.Duration) error) LimiterOption {
	return func(l *RateLimiter) { l.sleep = sleep }
}

// NewRateLimiter creates a limiter allowing maxCalls per window with at
// least minDelay between calls.
func NewRateLimiter(window time.Duration, maxCalls int, minDelay time.Duration, opts ...LimiterOption) *RateLimiter {
	if maxCalls < 1 {
		maxCalls = 1
	}
	l := &RateLimiter{
		window:   window,
		maxCalls: maxCalls,
		minDelay: minDelay,
		now:      time.Now,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Acquire blocks until one more call may be issued, then records it.
// It returns early with the context's error if ctx is done while waiting.
//
// The mutex is held while sleeping so waiters are served in order. A
// caller queued behind a sleeping holder does not see its own context
// until the holder releases the lock; in-flight calls are never cancelled.
func (l *RateLimiter) Acquire(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)
	for len(l.calls) >= l.maxCalls {
		wait := l.window - now.Sub(l.calls[0])
		if wait > 0 {
			if err := l.sleep(ctx, wait); err != nil {
				return err
			}
		}
		now = l.now()
		l.prune(now)
	}

	if !l.lastCall.IsZero() {
		if gap := now.Sub(l.lastCall); gap < l.minDelay {
			if err := l.sleep(ctx, l.minDelay-gap); err != nil {
				return err
			}
			now = l.now()
		}
	}

	l.calls = append(l.calls, now)
	l.lastCall = now
	return nil
}

// InWindow returns how many calls are recorded in the trailing window.
func (l *RateLimiter) InWindow() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(l.now())
	return len(l.calls)
}

// prune drops timestamps that have left the window. Caller holds mu.
func (l *RateLimiter) prune(now time.Time) {
	i := 0
	for i < len(l.calls) && now.Sub(l.calls[i]) >= l.window {
		i++
	}
	if i > 0 {
		l.calls = append(l.calls[:0], l.calls[i:]...)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
