package animation

import "sync"

// FrameID identifies a requested frame callback so it can be cancelled.
type FrameID uint64

// Scheduler queues callbacks to run on the next display tick.
type Scheduler interface {
	// RequestFrame queues fn for the next tick.
	//
	// Parameters:
	//   - fn: the callback
	//
	// Returns:
	//   - FrameID: handle for CancelFrame
	RequestFrame(fn func()) FrameID

	// CancelFrame removes a queued callback. Unknown or already-run ids are ignored.
	//
	// Parameters:
	//   - id: the handle returned by RequestFrame
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler drained explicitly by the owner of the display loop.
// It is safe for concurrent use, but callbacks always run on the goroutine calling Flush.
type FrameQueue struct {
	mu      sync.Mutex
	next    FrameID
	order   []FrameID
	pending map[FrameID]func()
}

var _ Scheduler = &FrameQueue{}

// NewFrameQueue creates an empty FrameQueue.
//
// Returns:
//   - *FrameQueue: the queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func())}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.order = append(q.order, q.next)
	q.pending[q.next] = fn
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	delete(q.pending, id)
	q.mu.Unlock()
}

// Flush runs every callback queued before the call began, in request order. Callbacks
// requested while flushing wait for the next Flush, and a callback cancelled by an earlier
// one in the same batch does not run.
//
// Returns:
//   - int: the number of callbacks that ran
func (q *FrameQueue) Flush() int {
	q.mu.Lock()
	batch := q.order
	q.order = nil
	q.mu.Unlock()

	ran := 0
	for _, id := range batch {
		q.mu.Lock()
		fn, ok := q.pending[id]
		delete(q.pending, id)
		q.mu.Unlock()
		if !ok {
			continue
		}
		fn()
		ran++
	}
	return ran
}

// Pending reports how many callbacks are waiting.
//
// Returns:
//   - int: queued, uncancelled callbacks
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
