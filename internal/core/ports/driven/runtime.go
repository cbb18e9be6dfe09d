package driven

import (
	"context"
	"time"
)

// Runtime is the single-threaded event loop the dashboard controllers run on.
//
// Every callback handed to a Runtime runs on the loop, one at a time, so
// controller state needs no locking. Only the work function passed to Go
// runs elsewhere.
type Runtime interface {
	// Post schedules fn to run on the loop.
	Post(fn func())

	// Go runs work on its own goroutine and posts the completion it
	// returns back onto the loop. A nil completion is ignored.
	Go(work func(ctx context.Context) func())

	// AfterFunc runs fn on the loop once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer

	// Every runs fn on the loop every d until the timer is stopped.
	Every(d time.Duration, fn func()) Timer

	// Now returns the loop's current time.
	Now() time.Time
}

// Timer is a pending AfterFunc or Every registration.
type Timer interface {
	// Stop prevents future firings. It returns false if the timer had
	// already fired (AfterFunc) or was already stopped. A firing already
	// queued on the loop may still run; callers guard against that.
	Stop() bool
}
