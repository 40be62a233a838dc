package stepflow

import (
	"context"
	"errors"
	"sync"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow/constants"
	"go.uber.org/atomic"
)

// Dispatcher runs tasks on the single owner of a coordinator's state.
// Every step, sequence change and advancement goes through it, so
// implementations must run tasks one at a time and in dispatch order.
type Dispatcher interface {
	Dispatch(task func())
}

// ErrQueueRunning is returned by Queue.Run when another Run is active.
var ErrQueueRunning = errors.New("stepflow: queue is already running")

// Immediate runs tasks on the calling goroutine. A task dispatched while
// another is running (a screen reporting a step during a transition, or a
// second goroutine) is queued and run by the goroutine that is already
// draining, after the current task returns.
type Immediate struct {
	mu      sync.Mutex
	running bool
	pending []func()
}

// NewImmediate creates a dispatcher that runs tasks inline.
func NewImmediate() *Immediate {
	return &Immediate{}
}

func (d *Immediate) Dispatch(task func()) {
	d.mu.Lock()
	d.pending = append(d.pending, task)
	if d.running {
		d.mu.Unlock()
		return
	}
	d.running = true
	d.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			d.mu.Lock()
			d.running = false
			d.mu.Unlock()
			panic(r)
		}
	}()

	for {
		d.mu.Lock()
		if len(d.pending) == 0 {
			// Cleared under the same lock that saw the queue empty, so a
			// concurrent Dispatch either lands before this or drains itself.
			d.running = false
			d.mu.Unlock()
			return
		}
		next := d.pending[0]
		d.pending = d.pending[1:]
		d.mu.Unlock()

		next()
	}
}

// Queue is a single-owner task queue. Dispatch never blocks; tasks run when
// the owner calls Run or Drain.
//
// A host with its own frame loop calls Drain once per frame. Otherwise one
// goroutine calls Run.
type Queue struct {
	mu      sync.Mutex
	tasks   []func()
	wake    chan struct{}
	running atomic.Bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		tasks: make([]func(), 0, constants.DefaultQueueSize),
		wake:  make(chan struct{}, 1),
	}
}

func (q *Queue) Dispatch(task func()) {
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Drain runs the tasks queued so far and returns how many ran. Tasks
// dispatched while draining wait for the next call.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.tasks
	q.tasks = make([]func(), 0, constants.DefaultQueueSize)
	q.mu.Unlock()

	for _, task := range batch {
		task()
	}
	return len(batch)
}

// Run drains the queue as tasks arrive until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	if !q.running.CompareAndSwap(false, true) {
		return ErrQueueRunning
	}
	defer q.running.Store(false)

	for {
		q.Drain()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
	}
}

// Len returns the number of tasks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
