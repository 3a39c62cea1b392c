// Package matrix provides generic dense matrices and vectors with a parallel,
// job-based matrix product.
//
// The matrix package provides:
//
//   - Vector[T]: an immutable ordered sequence with DotProduct.
//   - Dense[T]: a row-major rows×cols matrix whose backing length is checked
//     at construction (len(data) == rows*cols).
//   - Multiply: the fallible product. Every output cell (i, j) becomes one
//     job carrying a copy of row i of a and column j of b; jobs go to worker
//     i mod W of a workpool.Pool and come back through one-shot replies that
//     carry the cell's linear index, so assembly never depends on completion
//     order.
//   - MustMultiply: the same product, panicking on any error. Never use it
//     where the caller needs to recover.
//   - Engine[T]: a long-lived pool for many products, with explicit Close.
//
// Numeric types are restricted by the Numeric constraint to built-in integer
// and floating-point kinds.
//
// Rendering follows the compact form {r0e0 r0e1, r1e0 r1e1}; %#v prints
// Matrix(row=R, col=C, {…}).
//
// See the examples in this package for usage patterns.
package matrix
