// Package lvconc multiplies dense matrices in parallel by turning every
// output cell into an independent job for a fixed pool of workers.
//
// 🚀 What is lvconc?
//
//	A small concurrency toolkit built around one question: how do you fan
//	work out to N goroutines and put the answers back in order?
//		• Generic vectors & dense matrices with checked shapes
//		• Multiply: one dot-product job per cell, one-shot replies
//		• A reusable worker pool with per-worker unbounded queues
//		• Named counters, fixed or growing, safe for concurrent use
//
// ✨ Why choose lvconc?
//
//   - Deterministic output - every reply carries its cell index
//   - Failures surface as errors, never as partial matrices
//   - Typed: Dense[int64] and Dense[float64] share one implementation
//
// Packages:
//
//	matrix/  : Vector, Dense, Multiply, MustMultiply, Engine
//	workpool/: Pool, Promise/Future one-shot replies
//	metrics/ : Fixed and Dynamic counters
//	cmd/lvconc: CLI: multiply YAML operands, metrics & pipeline demos
//
// Quick example:
//
//	[1 2 3]   [1 2]   [22 28]
//	[4 5 6] × [3 4] = [49 64]
//	          [5 6]
//
//	go get github.com/katalvlaran/lvconc/matrix
package lvconc
