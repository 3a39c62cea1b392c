// SPDX-License-Identifier: MIT

package workpool

import "sync"

// Promise is the sending half of a one-shot reply path.
// It is resolved at most once; Resolve and Drop are safe to call in any order
// and any number of times, only the first call has an effect.
type Promise[R any] struct {
	ch   chan R
	once sync.Once
}

// Future is the receiving half of a one-shot reply path.
type Future[R any] struct {
	ch <-chan R
}

// NewPromise returns a connected promise/future pair.
// The channel is buffered so Resolve never blocks the worker, even when the
// receiver has not started waiting yet.
func NewPromise[R any]() (*Promise[R], *Future[R]) {
	ch := make(chan R, 1)

	return &Promise[R]{ch: ch}, &Future[R]{ch: ch}
}

// Resolve delivers v. It reports false when the promise was already resolved
// or dropped.
func (p *Promise[R]) Resolve(v R) bool {
	sent := false
	p.once.Do(func() {
		p.ch <- v
		close(p.ch)
		sent = true
	})

	return sent
}

// Drop closes the promise without a value. Dropping after Resolve is a no-op,
// so handlers can `defer p.Drop()`.
func (p *Promise[R]) Drop() {
	p.once.Do(func() { close(p.ch) })
}

// Wait blocks until the promise is resolved or dropped.
// It returns ErrNoReply for a dropped promise. A future yields its value
// once; later calls report ErrNoReply.
func (f *Future[R]) Wait() (R, error) {
	v, ok := <-f.ch
	if !ok {
		var zero R
		return zero, ErrNoReply
	}

	return v, nil
}

// Done exposes the underlying channel for use in select statements.
// It delivers at most one value and is closed afterwards.
func (f *Future[R]) Done() <-chan R { return f.ch }
