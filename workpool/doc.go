// SPDX-License-Identifier: MIT

// Package workpool provides a fixed-size worker pool with one dedicated job
// queue per worker and one-shot completion handles.
//
// The pool is the execution layer behind matrix.Multiply, but it is generic
// over the job type and knows nothing about matrices:
//
//   - Pool[J]: W goroutines, each draining its own unbounded MPSC queue.
//     Callers pick the target worker explicitly (Submit(worker, job)), which
//     keeps routing deterministic and independent of timing.
//   - Promise[R] / Future[R]: a single-use reply path. A promise is either
//     resolved once or dropped; a dropped promise makes Future.Wait return
//     ErrNoReply, which is how a crashed job becomes visible to its caller.
//
// Lifecycle:
//
//	p, _ := workpool.NewPool(4, handle)
//	_ = p.Start()           // spawn workers
//	_ = p.Submit(i%4, job)  // route jobs
//	p.Close()               // no more jobs; workers exit once drained
//	err := p.Wait()         // first worker error, if any
//
// Shutdown combines Close and Wait. A pool cannot be restarted after Close.
//
// Panics raised by the handler are recovered per job and reported through
// Wait as ErrWorkerPanic; the worker keeps draining its queue so that every
// queued job still reaches the handler.
package workpool
