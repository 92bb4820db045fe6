// SPDX-License-Identifier: MIT

// Package matrix: domain types for the sparse storage engine.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import (
	"cmp"
	"strconv"
)

// Number is the set of element types a Sparse matrix can hold.
// Every member has an additive identity (its zero value) and a plain
// decimal text form, which the text codec relies on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Coordinate addresses one cell by (Col, Row).
// Coordinates are plain values and are never mutated once built.
//
// Ordering is row-major: Row first, then Col, even though Col is declared
// first. Storage order and the dump order both follow Compare.
type Coordinate struct {
	Col uint // column index, 0-based
	Row uint // row index, 0-based
}

// At builds a Coordinate from a column and row index.
func At(col, row uint) Coordinate { return Coordinate{Col: col, Row: row} }

// Compare returns -1, 0 or +1 ordering a and b row-major.
// Complexity: O(1).
func Compare(a, b Coordinate) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}

	return cmp.Compare(a.Col, b.Col)
}

// Less reports whether a sorts strictly before b (row-major).
func Less(a, b Coordinate) bool { return Compare(a, b) < 0 }

// AppendText appends the wire form "<col> <row> " to dst.
// The trailing separator is always written; entry lines rely on it.
func (c Coordinate) AppendText(dst []byte) ([]byte, error) {
	dst = strconv.AppendUint(dst, uint64(c.Col), 10)
	dst = append(dst, _sep)
	dst = strconv.AppendUint(dst, uint64(c.Row), 10)
	dst = append(dst, _sep)

	return dst, nil
}

// String returns the wire form of c, trailing separator included.
func (c Coordinate) String() string {
	b, _ := c.AppendText(make([]byte, 0, 24))

	return string(b)
}
