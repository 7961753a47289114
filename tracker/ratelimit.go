package tracker

import (
	"log"
	"time"
)

// RateLimiter counts outbound calls and blocks once the ceiling is reached.
// The upstream allows 10 calls per minute; the default ceiling of 9 keeps a
// margin under that. One blocking pause per window, no sliding window: call
// volume per run is small enough that the approximation holds.
type RateLimiter struct {
	limit int
	pause time.Duration
	calls int
}

// NewRateLimiter creates a limiter that pauses for the given duration every
// time limit calls have been made.
func NewRateLimiter(limit int, pause time.Duration) *RateLimiter {
	return &RateLimiter{limit: limit, pause: pause}
}

// Tick records one completed call, pausing and resetting at the ceiling.
func (l *RateLimiter) Tick() {
	l.calls++
	if l.calls >= l.limit {
		log.Printf("rate limit ceiling of %d calls reached, pausing for %s", l.limit, l.pause)
		time.Sleep(l.pause)
		l.calls = 0
	}
}

// Pause blocks for the configured window and resets the counter. Used when
// the API reports its own rate-limit error inside a response body.
func (l *RateLimiter) Pause() {
	log.Printf("upstream reported rate limit, pausing for %s", l.pause)
	time.Sleep(l.pause)
	l.calls = 0
}
