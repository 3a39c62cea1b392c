// SPDX-License-Identifier: MIT
// Package matrix: the parallel product.
//
// Purpose:
//   - Split a×b into one dot-product job per output cell.
//   - Route jobs deterministically (row i -> worker i mod W).
//   - Collect replies in dispatch order into a pre-sized buffer.
//
// Notes:
//   - Multiply owns a fresh pool for the duration of the call; Engine keeps
//     one alive across calls. Both share dispatch/collect below.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvconc/workpool"
	"github.com/sirupsen/logrus"
)

// Operation name constants for unified error wrapping.
const (
	opMultiply       = "Multiply"
	opEngineMultiply = "Engine.Multiply"
	opNewEngine      = "NewEngine"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellPool is the pool type that executes cell jobs.
type cellPool[T Numeric] interface {
	Workers() int
	Submit(worker int, j job[T]) error
}

// Multiply returns a·b computed by a per-call pool of workers.
// MAIN DESCRIPTION:
//   - The fallible core product. The pool is created, used and torn down
//     inside the call; no goroutine outlives it.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (before any goroutine starts).
//   - Stage 2: start W workers (WithWorkers, default DefaultWorkers).
//   - Stage 3: dispatch one job per cell in row-major order to worker i mod W.
//   - Stage 4: close the pool so workers exit once their queues drain.
//   - Stage 5: wait on replies in dispatch order, write each at its index.
//   - Stage 6: wait for the workers and return the rows(a)×cols(b) result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrWorkerFailure when any reply is missing; no partial result.
//
// Determinism:
//   - Output is independent of worker scheduling: replies carry their index.
//
// Complexity:
//   - Time O(r*c*k / W) compute plus O(r*c*k) copying at dispatch, Space O(r*c*k)
//     for the queued job vectors.
func Multiply[T Numeric](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	o := gatherOptions(opts...)

	pool, err := workpool.NewPool[job[T]](o.workers, cellHandler[T](o), o.poolOptions()...)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	if err = pool.Start(); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	futures, derr := dispatch[T](pool, a, b)
	pool.Close()
	if derr != nil {
		_ = pool.Wait()
		return nil, matrixErrorf(opMultiply, derr)
	}
	out, cerr := collect(futures, a.r, b.c)
	werr := pool.Wait()
	if cerr != nil {
		return nil, matrixErrorf(opMultiply, cerr)
	}
	if werr != nil {
		return nil, matrixErrorf(opMultiply, fmt.Errorf("%w: %w", ErrWorkerFailure, werr))
	}
	o.logger.WithFields(logrus.Fields{
		"rows": out.r, "cols": out.c, "inner": a.c, "workers": o.workers,
	}).Debug("matrix: multiply done")

	return out, nil
}

// MustMultiply is Multiply that panics on any error.
// It is meant for literals and examples where the shapes are known to be
// compatible. A panic here is unrecoverable by contract: code that must
// handle dimension mismatches or worker failures calls Multiply instead.
func MustMultiply[T Numeric](a, b *Dense[T], opts ...Option) *Dense[T] {
	m, err := Multiply(a, b, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// dispatch builds and submits one job per output cell of a·b in row-major
// order and returns the futures in the same order.
// Operands must already be validated.
func dispatch[T Numeric](pool cellPool[T], a, b *Dense[T]) ([]*workpool.Future[reply[T]], error) {
	workers := pool.Workers()
	futures := make([]*workpool.Future[reply[T]], 0, a.r*b.c)
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			jb, future := newJob(i*b.c+j, vectorOf(a.row(i)), vectorOf(b.col(j)))
			if err := pool.Submit(i%workers, jb); err != nil {
				jb.reply.Drop()
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			futures = append(futures, future)
		}
	}

	return futures, nil
}

// collect waits on futures in order and assembles a rows×cols result.
// The first missing reply aborts with ErrWorkerFailure.
func collect[T Numeric](futures []*workpool.Future[reply[T]], rows, cols int) (*Dense[T], error) {
	buf := make([]T, rows*cols)
	for n, f := range futures {
		r, err := f.Wait()
		if err != nil {
			return nil, fmt.Errorf("reply %d: %w: %w", n, ErrWorkerFailure, err)
		}
		buf[r.index] = r.value
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}
