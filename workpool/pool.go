// SPDX-License-Identifier: MIT

package workpool

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Handler processes one job on the worker with index worker.
// Handlers own any reply path carried by the job and must not retain the job
// after returning.
type Handler[J any] func(worker int, job J)

type poolState int

const (
	stateIdle poolState = iota
	stateRunning
	stateClosed
)

// Pool is a fixed set of workers, each consuming a dedicated job queue.
// Submit, Close and Wait are safe for concurrent use.
type Pool[J any] struct {
	handle Handler[J]
	opts   Options
	log    *logrus.Entry
	queues []*jobQueue[J]

	mu    sync.RWMutex
	state poolState
	group errgroup.Group
}

// NewPool builds a pool of `workers` workers. Nothing runs until Start.
//
// Errors:
//   - ErrInvalidWorkerCount when workers <= 0.
//   - ErrNilHandler when handle is nil.
//
// Complexity: O(workers).
func NewPool[J any](workers int, handle Handler[J], opts ...Option) (*Pool[J], error) {
	if workers <= 0 {
		return nil, fmt.Errorf("NewPool(%d): %w", workers, ErrInvalidWorkerCount)
	}
	if handle == nil {
		return nil, ErrNilHandler
	}
	o := gatherOptions(opts...)
	queues := make([]*jobQueue[J], workers)
	for i := range queues {
		queues[i] = newJobQueue[J]()
	}

	return &Pool[J]{
		handle: handle,
		opts:   o,
		log:    o.logger,
		queues: queues,
	}, nil
}

// Workers returns the fixed worker count.
func (p *Pool[J]) Workers() int { return len(p.queues) }

// Pending returns the number of queued jobs not yet picked up by a worker.
func (p *Pool[J]) Pending() int {
	n := 0
	for _, q := range p.queues {
		n += q.len()
	}

	return n
}

// Start spawns one goroutine per worker.
func (p *Pool[J]) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case stateRunning:
		return ErrPoolStarted
	case stateClosed:
		return ErrPoolClosed
	}
	for id := range p.queues {
		p.group.Go(func() error { return p.run(id) })
	}
	p.state = stateRunning
	p.log.WithField("workers", len(p.queues)).Debug("workpool: started")

	return nil
}

// Submit appends job to the queue of the given worker. It never blocks.
func (p *Pool[J]) Submit(worker int, job J) error {
	if worker < 0 || worker >= len(p.queues) {
		return fmt.Errorf("Submit(%d): %w", worker, ErrWorkerOutOfRange)
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch p.state {
	case stateIdle:
		return ErrPoolNotStarted
	case stateClosed:
		return ErrPoolClosed
	}

	return p.queues[worker].push(job)
}

// Close stops accepting jobs. Workers finish what is already queued and exit.
// Close does not wait; call Wait for that. Closing twice is a no-op.
func (p *Pool[J]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == stateClosed {
		return
	}
	p.state = stateClosed
	for _, q := range p.queues {
		q.close()
	}
	p.log.Debug("workpool: closed")
}

// Wait blocks until every started worker has exited and returns the first
// worker error (a wrapped ErrWorkerPanic), or nil.
// Wait on a pool that was never closed blocks forever.
func (p *Pool[J]) Wait() error {
	err := p.group.Wait()
	if err != nil {
		p.log.WithError(err).Warn("workpool: drained with worker errors")
	} else {
		p.log.Debug("workpool: drained")
	}

	return err
}

// Shutdown closes the pool and waits for all workers.
func (p *Pool[J]) Shutdown() error {
	p.Close()

	return p.Wait()
}

// run is the worker loop: drain the queue until it is closed and empty.
// A panicking job does not stop the loop; the first panic is returned.
func (p *Pool[J]) run(id int) error {
	var first error
	q := p.queues[id]
	for {
		job, ok := q.pop()
		if !ok {
			return first
		}
		if err := p.execute(id, job); err != nil && first == nil {
			first = err
		}
	}
}

// execute runs one job and, when it completed, counts it for worker id.
// Only a panicking handler fails the worker; accounting problems are logged.
func (p *Pool[J]) execute(id int, job J) error {
	if err := p.invoke(id, job); err != nil {
		return err
	}
	p.count(id)

	return nil
}

func (p *Pool[J]) invoke(id int, job J) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d: %w: %v", id, ErrWorkerPanic, r)
			p.log.WithFields(logrus.Fields{"worker": id, "panic": r}).Error("workpool: job panicked")
		}
	}()
	p.handle(id, job)

	return nil
}

func (p *Pool[J]) count(id int) {
	if p.opts.counter == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.WithFields(logrus.Fields{"worker": id, "panic": r}).Warn("workpool: counter panicked")
		}
	}()
	if err := p.opts.counter.Inc(WorkerKey(id)); err != nil {
		p.log.WithError(err).WithField("worker", id).Debug("workpool: counter increment failed")
	}
}
