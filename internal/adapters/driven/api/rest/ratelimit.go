package rest

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultRate is the proactive request budget per second.
	DefaultRate = 10.0

	// DefaultBurst is the number of requests allowed back to back.
	DefaultBurst = 5

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// Throttle paces requests to the scheduling service. It combines a token
// bucket with the service's Retry-After hints on 429 and 503 responses.
type Throttle struct {
	mu         sync.Mutex
	bucket     *rate.Limiter
	retryAfter time.Time
}

// NewThrottle creates a throttle allowing perSecond requests per second.
// Zero or negative disables the token bucket.
func NewThrottle(perSecond float64) *Throttle {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Throttle{
		bucket: rate.NewLimiter(limit, DefaultBurst),
	}
}

// Wait blocks until a request may be sent.
func (t *Throttle) Wait(ctx context.Context) error {
	t.mu.Lock()
	until := t.retryAfter
	t.mu.Unlock()

	if wait := time.Until(until); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return t.bucket.Wait(ctx)
}

// Observe records a Retry-After hint from resp.
func (t *Throttle) Observe(resp *http.Response) {
	if resp == nil {
		return
	}
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
		return
	}
	header := resp.Header.Get(HeaderRetryAfter)
	if header == "" {
		return
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.retryAfter = time.Now().Add(time.Duration(seconds) * time.Second)
}

// RetryAfter returns when the service asked to be contacted again.
func (t *Throttle) RetryAfter() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.retryAfter
}

// Limit returns the token bucket rate.
func (t *Throttle) Limit() rate.Limit {
	return t.bucket.Limit()
}
