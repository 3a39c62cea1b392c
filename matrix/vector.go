// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"slices"
	"strings"
)

// Vector is an immutable ordered sequence of T.
// It has value semantics: NewVector copies its input and Data returns a copy,
// so a Vector handed to another goroutine never aliases caller memory.
type Vector[T Numeric] struct {
	data []T
}

// NewVector wraps a copy of data.
// Complexity: O(n).
func NewVector[T Numeric](data []T) Vector[T] {
	return Vector[T]{data: slices.Clone(data)}
}

// vectorOf adopts data without copying. Callers must own data exclusively.
func vectorOf[T Numeric](data []T) Vector[T] {
	return Vector[T]{data: data}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Data returns a copy of the elements.
func (v Vector[T]) Data() []T { return slices.Clone(v.data) }

// DotProduct returns Σ v[i]*other[i], accumulated from the zero value in
// index order.
//
// Errors:
//   - ErrDimensionMismatch when the lengths differ.
//
// Behavior highlights:
//   - Two empty vectors yield zero.
//   - Pure; neither operand is modified.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v Vector[T]) DotProduct(other Vector[T]) (T, error) {
	var sum T
	if len(v.data) != len(other.data) {
		return sum, fmt.Errorf("DotProduct(len %d, len %d): %w", len(v.data), len(other.data), ErrDimensionMismatch)
	}
	for i, x := range v.data {
		sum += x * other.data[i]
	}

	return sum, nil
}

// String renders the vector as [e0 e1 ...].
func (v Vector[T]) String() string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = fmt.Sprint(x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
