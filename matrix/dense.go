// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Make len(data) == rows*cols a checked invariant of construction.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At/Set: O(1); Row: O(c); Col: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew = "NewDense"
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen    = "{"
	_fmtClose   = "}"
	_fmtRowSep  = ", "
	_fmtElemSep = " "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense is not safe for concurrent mutation. Multiply copies the rows and
// columns it needs while dispatching, so operands must not be modified until
// it returns.
type Dense[T Numeric] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer   = (*Dense[int])(nil)
	_ fmt.GoStringer = (*Dense[int])(nil)
)

// NewDense creates a rows×cols matrix over a copy of data (row-major).
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: validate rows*cols fits in int and len(data) == rows*cols;
//     else ErrBadShape.
//   - Stage 3: copy data so the caller keeps ownership of its slice.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (wrapped with "NewDense(r,c)").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Numeric](data []T, rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	if err := validateShape(len(data), rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	buf := make([]T, rows*cols)
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// Zeros creates a rows×cols matrix filled with the zero value.
func Zeros[T Numeric](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	if err := validateSize(rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// MustDense is NewDense for literals known to be well-formed; it panics on error.
func MustDense[T Numeric](data []T, rows, cols int) *Dense[T] {
	m, err := NewDense(data, rows, cols)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the flat offset.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i as a Vector (contiguous slice, length Cols()).
func (m *Dense[T]) Row(i int) (Vector[T], error) {
	if i < 0 || i >= m.r {
		return Vector[T]{}, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return vectorOf(m.row(i)), nil
}

// Col returns a copy of column j as a Vector (strided gather, length Rows()).
func (m *Dense[T]) Col(j int) (Vector[T], error) {
	if j < 0 || j >= m.c {
		return Vector[T]{}, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return vectorOf(m.col(j)), nil
}

// row copies row i; i must be valid.
func (m *Dense[T]) row(i int) []T {
	return slices.Clone(m.data[i*m.c : (i+1)*m.c])
}

// col gathers column j with stride c; j must be valid.
func (m *Dense[T]) col(j int) []T {
	out := make([]T, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// Data returns a copy of the row-major backing slice.
func (m *Dense[T]) Data() []T { return slices.Clone(m.data) }

// Clone returns a deep copy.
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: slices.Clone(m.data)}
}

// Equal reports whether o has the same shape and elements.
// A nil receiver equals only a nil argument.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.r == o.r && m.c == o.c && slices.Equal(m.data, o.data)
}

// String renders rows joined by ", " inside braces, elements joined by a
// single space: a 2×3 matrix prints as {1 2 3, 4 5 6}.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtElemSep)
			}
			fmt.Fprint(&b, m.data[i*m.c+j])
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// GoString renders Matrix(row=R, col=C, {…}) for %#v.
func (m *Dense[T]) GoString() string {
	return fmt.Sprintf("Matrix(row=%d, col=%d, %s)", m.r, m.c, m.String())
}
