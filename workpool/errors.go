// SPDX-License-Identifier: MIT
// Package workpool: sentinel error set.
// All messages are prefixed with "workpool: ..." and are matched via errors.Is.

package workpool

import "errors"

var (
	// ErrInvalidWorkerCount is returned by NewPool when workers <= 0.
	ErrInvalidWorkerCount = errors.New("workpool: worker count must be > 0")

	// ErrNilHandler is returned by NewPool when no job handler is given.
	ErrNilHandler = errors.New("workpool: nil handler")

	// ErrPoolStarted is returned by Start on a pool that is already running.
	ErrPoolStarted = errors.New("workpool: pool already started")

	// ErrPoolNotStarted is returned by Submit before Start.
	ErrPoolNotStarted = errors.New("workpool: pool not started")

	// ErrPoolClosed is returned by Start and Submit after Close.
	ErrPoolClosed = errors.New("workpool: pool is closed")

	// ErrWorkerOutOfRange is returned by Submit for a worker index outside [0, Workers()).
	ErrWorkerOutOfRange = errors.New("workpool: worker index out of range")

	// ErrWorkerPanic reports that a handler panicked while processing a job.
	ErrWorkerPanic = errors.New("workpool: worker panicked")

	// ErrNoReply is returned by Future.Wait when the promise was dropped
	// without a value.
	ErrNoReply = errors.New("workpool: promise dropped without reply")
)
