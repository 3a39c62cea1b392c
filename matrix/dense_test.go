// Package matrix_test contains unit tests for the Dense type.
package matrix_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvconc/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense([]int{}, -1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense([]int{}, 5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Zeros[int](-2, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseBadShape ensures the len(data) == rows*cols invariant is checked.
func TestNewDenseBadShape(t *testing.T) {
	_, err := matrix.NewDense([]int{1, 2, 3, 4, 5}, 2, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense([]int{1, 2, 3, 4, 5, 6, 7}, 2, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	require.Panics(t, func() { matrix.MustDense([]int{1}, 2, 2) })
}

// TestNewDenseShapeOverflow ensures rows*cols is never computed with
// wraparound: 2^(IntSize-2) × 4 wraps to 0 and must not match empty data.
func TestNewDenseShapeOverflow(t *testing.T) {
	const huge = 1 << (strconv.IntSize - 2)

	_, err := matrix.NewDense([]int{}, huge, 4)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense([]int{}, math.MaxInt, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Zeros[int](huge, 4)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	// A zero dimension never overflows.
	m, err := matrix.NewDense([]int{}, math.MaxInt, 0)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, m.Rows())
}

// TestNewDenseZeroSized accepts empty shapes.
func TestNewDenseZeroSized(t *testing.T) {
	m, err := matrix.NewDense[float64](nil, 0, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
	require.Equal(t, "{}", m.String())
}

// TestNewDenseCopiesInput ensures the matrix does not alias the caller's slice.
func TestNewDenseCopiesInput(t *testing.T) {
	src := []int{1, 2, 3, 4}
	m := mustDense(t, src, 2, 2)
	src[0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, []int{1, 2, 3, 4}, m.Data())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 7.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)
}

// TestRowCol checks contiguous row slices and strided column gathers.
func TestRowCol(t *testing.T) {
	m := mustDense(t, []int{1, 2, 3, 4, 5, 6}, 2, 3)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row.Data())

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6}, col.Data())

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustDense(t, []int{1, 2, 3, 4}, 2, 2)
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3))
	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
	require.False(t, m.Equal(clone))
}

func TestEqual(t *testing.T) {
	a := mustDense(t, []int{1, 2, 3, 4}, 2, 2)
	b := mustDense(t, []int{1, 2, 3, 4}, 4, 1)
	require.False(t, a.Equal(b), "same data, different shape")

	var nilM *matrix.Dense[int]
	require.False(t, a.Equal(nil))
	require.True(t, nilM.Equal(nil))
}

// TestStringOutput checks the compact rendering.
func TestStringOutput(t *testing.T) {
	cases := []struct {
		name string
		m    *matrix.Dense[int]
		want string
	}{
		{"2x3", mustDense(t, []int{1, 2, 3, 4, 5, 6}, 2, 3), "{1 2 3, 4 5 6}"},
		{"3x2", mustDense(t, []int{1, 2, 3, 4, 5, 6}, 3, 2), "{1 2, 3 4, 5 6}"},
		{"1x1", mustDense(t, []int{-7}, 1, 1), "{-7}"},
		{"2x0", mustDense(t, []int{}, 2, 0), "{, }"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.m.String())
			require.Equal(t, tc.want, fmt.Sprint(tc.m))
		})
	}

	f := mustDense(t, []float64{1.5, -2, 0.25, 3}, 2, 2)
	require.Equal(t, "{1.5 -2, 0.25 3}", f.String())
}

func TestGoString(t *testing.T) {
	m := mustDense(t, []int{22, 28, 49, 64}, 2, 2)
	require.Equal(t, "Matrix(row=2, col=2, {22 28, 49 64})", fmt.Sprintf("%#v", m))
}
