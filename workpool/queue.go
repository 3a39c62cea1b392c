// SPDX-License-Identifier: MIT

package workpool

import (
	"sync"

	"github.com/eapache/queue"
	"golang.org/x/sys/cpu"
)

// jobQueue is an unbounded multi-producer single-consumer FIFO.
//   - push never blocks and fails only after close.
//   - pop blocks until an item arrives; after close it keeps returning
//     queued items and reports ok=false once drained.
//
// Queues of neighbouring workers sit next to each other in Pool.queues, so
// the state is padded to keep their locks on separate cache lines.
type jobQueue[J any] struct {
	_      cpu.CacheLinePad
	mu     sync.Mutex
	cond   *sync.Cond
	items  *queue.Queue // ring buffer, grows on demand
	closed bool
	_      cpu.CacheLinePad
}

func newJobQueue[J any]() *jobQueue[J] {
	q := &jobQueue[J]{items: queue.New()}
	q.cond = sync.NewCond(&q.mu)

	return q
}

func (q *jobQueue[J]) push(job J) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrPoolClosed
	}
	q.items.Add(job)
	q.cond.Signal() // single consumer

	return nil
}

func (q *jobQueue[J]) pop() (J, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.items.Length() == 0 && !q.closed {
		q.cond.Wait()
	}
	if q.items.Length() == 0 {
		var zero J
		return zero, false
	}

	return q.items.Remove().(J), true
}

// close is idempotent.
func (q *jobQueue[J]) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *jobQueue[J]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Length()
}
