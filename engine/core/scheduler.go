package core

import (
	"errors"
	"sync"
)

// ErrNoScheduler is returned when rendering is set up without a way to
// request frames.
var ErrNoScheduler = errors.New("core: no frame scheduler")

// FrameFunc runs once on the render thread. It reports whether it drew into
// the back buffer, which is presented only when some callback did.
type FrameFunc func() bool

// Scheduler asks for cb to run once before the next present.
type Scheduler interface {
	RequestFrame(cb FrameFunc)
}

// FrameQueue is the Scheduler the Run loop drains. Callbacks requested while
// the queue is running are deferred to the next iteration, so a frame that
// re-requests itself runs once per loop.
type FrameQueue struct {
	mu      sync.Mutex
	pending []FrameFunc
	wake    func()
}

// NewFrameQueue returns a queue that calls wake after each request; wake may
// be nil.
func NewFrameQueue(wake func()) *FrameQueue {
	return &FrameQueue{wake: wake}
}

// RequestFrame may be called from any goroutine.
func (q *FrameQueue) RequestFrame(cb FrameFunc) {
	if cb == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, cb)
	q.mu.Unlock()
	if q.wake != nil {
		q.wake()
	}
}

func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// RunPending runs the callbacks queued so far, in request order, and returns
// how many of them drew.
func (q *FrameQueue) RunPending() int {
	q.mu.Lock()
	cbs := q.pending
	q.pending = nil
	q.mu.Unlock()
	drawn := 0
	for _, cb := range cbs {
		if cb() {
			drawn++
		}
	}
	return drawn
}
