// Package engine implements the adversarial search driver: the persistent
// game tree, the MTD(f)/alpha-beta minimax, the iterative-deepening loop,
// and the deadline-aware timer that lets all three exit gracefully.
package engine

import "time"

// DefaultTimeoutThreshold is the single declared default for
// Timer.TimeoutsSoon's early-exit margin (spec.md §4.4, §9). Tests that
// want a tighter bound pass an explicit threshold to NewTimerWithThreshold
// instead of hardcoding a second default.
const DefaultTimeoutThreshold = 150 * time.Millisecond

// Timer is a monotonic deadline. It is advisory: the search checks it at
// child-boundary points only, and never preempts (spec.md §5).
type Timer struct {
	start     time.Time
	limit     time.Duration
	threshold time.Duration
}

// NewTimer starts a timer with limit as its deadline and the default
// timeout-soon threshold.
func NewTimer(limit time.Duration) *Timer {
	return NewTimerWithThreshold(limit, DefaultTimeoutThreshold)
}

// NewTimerWithThreshold starts a timer with an explicit timeout-soon
// threshold.
func NewTimerWithThreshold(limit, threshold time.Duration) *Timer {
	return &Timer{start: time.Now(), limit: limit, threshold: threshold}
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// TimeoutsSoon reports whether elapsed+threshold has reached the deadline,
// the predicate the search uses to exit gracefully (spec.md §4.4).
func (t *Timer) TimeoutsSoon() bool {
	return t.Elapsed()+t.threshold >= t.limit
}

// TimedOut reports whether the hard deadline has actually passed.
func (t *Timer) TimedOut() bool {
	return t.Elapsed() >= t.limit
}
