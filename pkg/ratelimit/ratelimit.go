// Package ratelimit provides a minimum-interval gate shared by all outbound
// provider calls. Both the password-range path and the email-breach path
// acquire a slot from the same limiter, so no two upstream requests are
// dispatched closer together than the configured interval regardless of
// caller concurrency.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// DefaultMinInterval is the default spacing between provider dispatches.
const DefaultMinInterval = 150 * time.Millisecond

// Limiter serializes outbound calls so consecutive dispatches are at least a
// minimum interval apart. The zero value is not usable; construct with New.
//
// The elapsed-time check and the stamp of the new dispatch time happen under
// one mutex hold. Two racing callers therefore cannot both observe the same
// "elapsed" value and proceed without waiting: the second caller computes its
// wait against the slot the first one already claimed.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time // time of the most recently claimed dispatch slot

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Option customizes a Limiter, mainly so tests can substitute a controllable
// clock.
type Option func(*Limiter)

// WithClock replaces the wall clock used to space dispatches.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// WithSleep replaces the suspension primitive used while waiting for a slot.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(l *Limiter) { l.sleep = sleep }
}

// New constructs a Limiter enforcing the given minimum interval between
// dispatches. A non-positive interval falls back to DefaultMinInterval.
func New(interval time.Duration, opts ...Option) *Limiter {
	if interval <= 0 {
		interval = DefaultMinInterval
	}

	l := &Limiter{
		interval: interval,
		now:      time.Now,
		sleep:    sleepCtx,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Acquire blocks until the caller may dispatch an outbound call, then stamps
// the claimed slot. It returns early with ctx.Err() if the context is
// canceled while waiting.
func (l *Limiter) Acquire(ctx context.Context) error {
	l.mu.Lock()
	now := l.now()

	slot := l.last.Add(l.interval)
	if slot.Before(now) {
		slot = now
	}
	// claim the slot before releasing the lock so concurrent acquirers queue
	// behind it rather than racing for the same gap
	l.last = slot
	l.mu.Unlock()

	if wait := slot.Sub(now); wait > 0 {
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}

	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint: wrapcheck
	case <-t.C:
		return nil
	}
}
