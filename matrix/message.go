// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvconc/workpool"
)

// job is the computation of one output cell.
// row and col are private copies; reply is resolved or dropped exactly once.
type job[T Numeric] struct {
	index int // linear output index i*cols + j
	row   Vector[T]
	col   Vector[T]
	reply *workpool.Promise[reply[T]]
}

// reply carries a computed cell back to the dispatcher.
type reply[T Numeric] struct {
	index int
	value T
}

// newJob pairs a job with the future the dispatcher waits on.
func newJob[T Numeric](index int, row, col Vector[T]) (job[T], *workpool.Future[reply[T]]) {
	promise, future := workpool.NewPromise[reply[T]]()

	return job[T]{index: index, row: row, col: col, reply: promise}, future
}

// computeCell is the worker handler.
// Row and column lengths are equal by construction (a.Cols == b.Rows), so a
// dot-product error is an internal invariant violation: it panics, the pool
// recovers, and the deferred Drop turns it into a missing reply.
func computeCell[T Numeric](_ int, j job[T]) {
	defer j.reply.Drop()

	value, err := j.row.DotProduct(j.col)
	if err != nil {
		panic(fmt.Sprintf("matrix: cell %d: %v", j.index, err))
	}
	j.reply.Resolve(reply[T]{index: j.index, value: value})
}

// cellHandler returns the worker handler for o: computeCell, or computeCell
// preceded by o.beforeCell. A panicking hook drops the reply like any other
// handler failure.
func cellHandler[T Numeric](o Options) workpool.Handler[job[T]] {
	if o.beforeCell == nil {
		return computeCell[T]
	}
	hook := o.beforeCell

	return func(worker int, j job[T]) {
		defer j.reply.Drop()
		hook(j.index)
		computeCell(worker, j)
	}
}
