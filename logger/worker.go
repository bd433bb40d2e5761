package logger

import (
	"sync"

	"github.com/gaborage/go-beams/destination"
	"github.com/gaborage/go-beams/event"
)

// queueSize bounds each async destination's backlog. A full queue applies
// backpressure to the logging call site instead of dropping events.
const queueSize = 1024

// worker is the single-consumer queue of one async destination. One
// goroutine drains the queue, so events reach the destination in the order
// they were enqueued.
type worker struct {
	tasks chan task
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

type task struct {
	e event.Event

	// barrier, when non-nil, marks a drain point: the worker closes it once
	// every earlier task has been delivered.
	barrier chan struct{}
}

func newWorker(d destination.Destination) *worker {
	w := &worker{
		tasks: make(chan task, queueSize),
		done:  make(chan struct{}),
	}

	go func() {
		defer close(w.done)
		for t := range w.tasks {
			if t.barrier != nil {
				close(t.barrier)
				continue
			}
			d.Log(t.e)
		}
	}()

	return w
}

func (w *worker) enqueue(e event.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.tasks <- task{e: e}
}

// drain blocks until every event enqueued before the call has been delivered.
func (w *worker) drain() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	barrier := make(chan struct{})
	w.tasks <- task{barrier: barrier}
	w.mu.Unlock()

	<-barrier
}

// stop closes the queue and waits for the consumer to finish the backlog.
func (w *worker) stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.tasks)
	w.mu.Unlock()

	<-w.done
}
