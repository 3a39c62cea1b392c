// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvconc/workpool"
	"github.com/sirupsen/logrus"
)

// Engine multiplies matrices on a long-lived worker pool, amortizing worker
// start-up across calls. Multiply may be called concurrently; every call
// keeps its own replies, so calls never observe each other's cells.
//
//	e, err := matrix.NewEngine[float64](matrix.WithWorkers(8))
//	if err != nil { ... }
//	defer e.Close()
//	c, err := e.Multiply(a, b)
type Engine[T Numeric] struct {
	opts Options
	pool *workpool.Pool[job[T]]
}

// NewEngine starts the engine's workers.
func NewEngine[T Numeric](opts ...Option) (*Engine[T], error) {
	o := gatherOptions(opts...)
	pool, err := workpool.NewPool[job[T]](o.workers, cellHandler[T](o), o.poolOptions()...)
	if err != nil {
		return nil, matrixErrorf(opNewEngine, err)
	}
	if err = pool.Start(); err != nil {
		return nil, matrixErrorf(opNewEngine, err)
	}

	return &Engine[T]{opts: o, pool: pool}, nil
}

// Workers returns the engine's worker count.
func (e *Engine[T]) Workers() int { return e.pool.Workers() }

// Multiply returns a·b with the same contract as the package-level Multiply.
// After Close it fails with workpool.ErrPoolClosed.
func (e *Engine[T]) Multiply(a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opEngineMultiply, err)
	}
	futures, err := dispatch[T](e.pool, a, b)
	if err != nil {
		return nil, matrixErrorf(opEngineMultiply, err)
	}
	out, err := collect(futures, a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opEngineMultiply, err)
	}
	e.opts.logger.WithFields(logrus.Fields{
		"rows": out.r, "cols": out.c, "inner": a.c,
	}).Debug("matrix: engine multiply done")

	return out, nil
}

// Close stops the workers after the queued jobs finish and waits for them.
// It returns a wrapped workpool.ErrWorkerPanic if any job panicked during
// the engine's lifetime. Closing twice is safe.
func (e *Engine[T]) Close() error {
	return e.pool.Shutdown()
}
