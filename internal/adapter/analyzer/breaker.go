package analyzer

import (
	"sync"
	"time"
)

// breaker stops calling the analyzer after a run of consecutive failures.
// Once the cooldown elapses one call is let through; its outcome decides
// whether the circuit closes or opens again.
type breaker struct {
	mu sync.Mutex

	threshold int
	cooldown  time.Duration
	now       func() time.Time

	failures  int
	openUntil time.Time
	open      bool
}

func newBreaker(threshold int, cooldown time.Duration) *breaker {
	if threshold <= 0 {
		threshold = 5
	}
	if cooldown <= 0 {
		cooldown = time.Minute
	}
	return &breaker{threshold: threshold, cooldown: cooldown, now: time.Now}
}

// allow reports whether a call may proceed.
func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return true
	}
	if b.now().Before(b.openUntil) {
		return false
	}
	// Half-open: re-arm so concurrent callers keep failing fast while the
	// probe is in flight.
	b.openUntil = b.now().Add(b.cooldown)
	return true
}

// tripped reports whether the circuit is open and still cooling down.
func (b *breaker) tripped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open && b.now().Before(b.openUntil)
}

func (b *breaker) success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.open = false
}

// failure records a failed call and reports whether the circuit just opened.
func (b *breaker) failure() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	if b.failures < b.threshold {
		return false
	}
	wasOpen := b.open
	b.open = true
	b.openUntil = b.now().Add(b.cooldown)
	return !wasOpen
}
