// Package throttle spaces outbound upstream calls so the process never
// exceeds the upstream's published request rate.
package throttle

import (
	"context"
	"sync"
	"time"

	"github.com/FogoReed/anime-app-full/internal/platform/metrics"
)

// DefaultMinInterval keeps the process under Jikan's 3 requests per second.
const DefaultMinInterval = 340 * time.Millisecond

// Clock is the time source used for spacing and backoff sleeps.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Stats is a snapshot of the throttle state.
type Stats struct {
	MinInterval time.Duration `json:"min_interval"`
	LastCall    time.Time     `json:"last_call"`
	Acquired    uint64        `json:"acquired"`
	TotalWait   time.Duration `json:"total_wait"`
}

// Throttle enforces a minimum gap between outbound calls. One instance is
// shared by every caller in the process; acquisitions queue on a one-slot
// semaphore so two callers never read the same stale timestamp.
type Throttle struct {
	interval time.Duration
	clock    Clock
	slot     chan struct{}

	mu        sync.Mutex
	last      time.Time
	acquired  uint64
	totalWait time.Duration
}

// New returns a Throttle. A non-positive interval uses DefaultMinInterval and
// a nil clock uses SystemClock.
func New(interval time.Duration, clock Clock) *Throttle {
	if interval <= 0 {
		interval = DefaultMinInterval
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Throttle{interval: interval, clock: clock, slot: make(chan struct{}, 1)}
}

// Acquire waits until MinInterval has passed since the last recorded call,
// then records the current time as the new call start.
func (t *Throttle) Acquire(ctx context.Context) error {
	select {
	case t.slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-t.slot }()

	t.mu.Lock()
	last := t.last
	t.mu.Unlock()

	start := t.clock.Now()
	if !last.IsZero() {
		if wait := t.interval - start.Sub(last); wait > 0 {
			if err := t.clock.Sleep(ctx, wait); err != nil {
				return err
			}
		}
	}

	now := t.clock.Now()
	waited := now.Sub(start)
	t.mu.Lock()
	t.last = now
	t.acquired++
	t.totalWait += waited
	t.mu.Unlock()

	metrics.ObserveThrottleWait(waited)
	return nil
}

// Record stores the completion time of a call so the next acquisition is
// spaced from it. Earlier timestamps never overwrite later ones.
func (t *Throttle) Record() {
	now := t.clock.Now()
	t.mu.Lock()
	if now.After(t.last) {
		t.last = now
	}
	t.mu.Unlock()
}

func (t *Throttle) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{
		MinInterval: t.interval,
		LastCall:    t.last,
		Acquired:    t.acquired,
		TotalWait:   t.totalWait,
	}
}

func (t *Throttle) MinInterval() time.Duration { return t.interval }
