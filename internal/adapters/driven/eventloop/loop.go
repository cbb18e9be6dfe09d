// Package eventloop implements driven.Runtime: a single logical thread
// that runs every dashboard callback one at a time.
//
// Tasks are queued without bound, so posting never blocks the caller.
// The queue is consumed either by Run, which executes tasks on the
// calling goroutine, or by Forward, which hands them one by one to
// another event loop such as a bubbletea program.
package eventloop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
)

// Ensure Loop implements the interface.
var _ driven.Runtime = (*Loop)(nil)

// ErrAlreadyConsumed is returned when a second consumer is attached.
var ErrAlreadyConsumed = errors.New("eventloop: queue already has a consumer")

// Loop is an event loop with timers.
type Loop struct {
	ctx context.Context

	mu       sync.Mutex
	tasks    []func()
	signal   chan struct{}
	consumed bool
}

// New creates a loop. Work started with Go receives ctx; cancelling it
// is the only way to abandon in-flight requests.
func New(ctx context.Context) *Loop {
	return &Loop{
		ctx:    ctx,
		signal: make(chan struct{}, 1),
	}
}

// Post queues fn to run on the loop.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()

	select {
	case l.signal <- struct{}{}:
	default:
	}
}

// Go runs work on its own goroutine and posts its completion.
func (l *Loop) Go(work func(ctx context.Context) func()) {
	go func() {
		if done := work(l.ctx); done != nil {
			l.Post(done)
		}
	}()
}

// AfterFunc runs fn on the loop once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) driven.Timer {
	t := &timer{}
	t.t = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.stopped.Load() {
				return
			}
			fn()
		})
	})
	return t
}

// Every runs fn on the loop every d until stopped.
func (l *Loop) Every(d time.Duration, fn func()) driven.Timer {
	t := &ticker{done: make(chan struct{})}
	tk := time.NewTicker(d)

	go func() {
		defer tk.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-l.ctx.Done():
				return
			case <-tk.C:
				l.Post(func() {
					if t.stopped.Load() {
						return
					}
					fn()
				})
			}
		}
	}()
	return t
}

// Now returns the wall clock.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// Run executes queued tasks on the calling goroutine until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.claim(); err != nil {
		return err
	}
	for {
		for _, fn := range l.drain() {
			fn()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.signal:
		}
	}
}

// Forward hands queued tasks, in order, to deliver until ctx is done.
// deliver may block; it must eventually run the task on the target loop.
func (l *Loop) Forward(ctx context.Context, deliver func(task func())) error {
	if err := l.claim(); err != nil {
		return err
	}
	go func() {
		for {
			for _, fn := range l.drain() {
				deliver(fn)
			}
			select {
			case <-ctx.Done():
				return
			case <-l.signal:
			}
		}
	}()
	return nil
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

func (l *Loop) claim() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.consumed {
		return ErrAlreadyConsumed
	}
	l.consumed = true
	return nil
}

func (l *Loop) drain() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	tasks := l.tasks
	l.tasks = nil
	return tasks
}

// timer wraps time.Timer so that a firing already queued when Stop is
// called is dropped.
type timer struct {
	t       *time.Timer
	stopped atomic.Bool
}

func (t *timer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	return t.t.Stop()
}

type ticker struct {
	done    chan struct{}
	stopped atomic.Bool
}

func (t *ticker) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	close(t.done)
	return true
}
