// SPDX-License-Identifier: MIT

// Package matrix: element type constraint shared by Vector and Dense.
package matrix

// Numeric is the set of element types usable in vectors and matrices.
// Every member has a zero value and supports *, + and +=, which is all the
// dot product needs. Complex kinds are excluded.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
