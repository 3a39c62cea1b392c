// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for product tests.
//   - Keep pool logging out of test output.

package matrix_test

import (
	"io"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvconc/matrix"
	"github.com/sirupsen/logrus"
)

// silent is a logger entry that discards everything.
func silent() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return logrus.NewEntry(l)
}

// opts returns the common option set for tests: silent logs plus extras.
func opts(extra ...matrix.Option) []matrix.Option {
	return append([]matrix.Option{matrix.WithLogger(silent())}, extra...)
}

// mustDense ALLOCATES a matrix from data or fails the test.
func mustDense[T matrix.Numeric](tb testing.TB, data []T, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense(data, r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// randFloats returns n values in [-1, 1) from a fixed seed.
func randFloats(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

// randInts returns n values in [-50, 50) from a fixed seed.
func randInts(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(100) - 50
	}

	return out
}

// naiveProduct is the textbook i-j-k triple loop, used as the reference.
func naiveProduct[T matrix.Numeric](a, b []T, r, k, c int) []T {
	out := make([]T, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var sum T
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*c+j]
			}
			out[i*c+j] = sum
		}
	}

	return out
}
